package ports

// Logger é o logger estruturado (pares chave/valor) usado por serviços, middlewares e persistência
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
	// With retorna um logger com os pares anexados a todas as entradas
	With(args ...any) Logger
}
