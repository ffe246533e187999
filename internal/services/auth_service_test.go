package services_test

import (
	stderrors "errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fatec/pi-back/internal/domain/errors"
	"github.com/fatec/pi-back/internal/services"
)

var _ = Describe("AuthService", func() {
	var (
		f      *fixture
		roleID int64
	)

	BeforeEach(func() {
		f = newFixture()
		roleID = f.role("admin").ID
	})

	Describe("Register", func() {
		It("grava o hash bcrypt em vez da senha", func() {
			user := f.register("Ana@Example.com", roleID)

			Expect(user.ID).To(BeNumerically(">", 0))
			Expect(user.Email.String()).To(Equal("ana@example.com"))
			Expect(user.PasswordHash).NotTo(Equal("secret123"))
			Expect(f.hasher.Compare(user.PasswordHash, "secret123")).To(BeTrue())
			Expect(user.CreatedBy).To(BeNil())
		})

		It("rejeita email duplicado independente da caixa", func() {
			f.register("ana@example.com", roleID)

			_, err := f.auth.Register(f.ctx, services.RegisterInput{
				Email: "ANA@example.com", Password: "secret123", Name: "Ana", RoleID: roleID,
			})
			Expect(err).To(MatchError(errors.ErrEmailAlreadyExists))
		})

		It("reporta papel desconhecido como não encontrado", func() {
			_, err := f.auth.Register(f.ctx, services.RegisterInput{
				Email: "ana@example.com", Password: "secret123", Name: "Ana", RoleID: 99,
			})

			var notFound *errors.NotFoundError
			Expect(stderrors.As(err, &notFound)).To(BeTrue())
			Expect(notFound.Resource).To(Equal(errors.ResourceRole))
			Expect(notFound.ID).To(Equal(int64(99)))

			users, err := f.users.FindAll(f.ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(users).To(BeEmpty())
		})

		It("rejeita senhas curtas", func() {
			_, err := f.auth.Register(f.ctx, services.RegisterInput{
				Email: "ana@example.com", Password: "12345", Name: "Ana", RoleID: roleID,
			})
			Expect(err).To(MatchError(errors.ErrInvalidInput))
		})

		It("rejeita senhas acima de 72 bytes mesmo com menos de 72 caracteres", func() {
			_, err := f.auth.Register(f.ctx, services.RegisterInput{
				Email: "ana@example.com", Password: strings.Repeat("é", 60), Name: "Ana", RoleID: roleID,
			})
			Expect(err).To(MatchError(errors.ErrInvalidInput))

			user, err := f.users.FindByEmail(f.ctx, "ana@example.com")
			Expect(err).NotTo(HaveOccurred())
			Expect(user).To(BeNil())
		})

		It("carimba o criador quando existe e o ignora caso contrário", func() {
			creator := f.register("admin@example.com", roleID)

			withCreator, err := f.auth.Register(f.ctx, services.RegisterInput{
				Email: "ana@example.com", Password: "secret123", Name: "Ana", RoleID: roleID,
				CreatorUserID: &creator.ID,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(withCreator.CreatedBy).To(HaveValue(Equal(creator.ID)))
			Expect(withCreator.UpdatedBy).To(HaveValue(Equal(creator.ID)))

			missing := int64(404)
			withoutCreator, err := f.auth.Register(f.ctx, services.RegisterInput{
				Email: "bia@example.com", Password: "secret123", Name: "Bia", RoleID: roleID,
				CreatorUserID: &missing,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(withoutCreator.CreatedBy).To(BeNil())
		})
	})

	Describe("Login", func() {
		BeforeEach(func() {
			f.register("ana@example.com", roleID)
		})

		It("emite um token cujo subject é o email", func() {
			token, err := f.auth.Login(f.ctx, "ana@example.com", "secret123")
			Expect(err).NotTo(HaveOccurred())
			Expect(f.tokens.Validate(token)).To(Equal("ana@example.com"))
		})

		It("rejeita senha errada ou email desconhecido", func() {
			_, err := f.auth.Login(f.ctx, "ana@example.com", "wrong-password")
			Expect(err).To(MatchError(errors.ErrInvalidCredentials))

			_, err = f.auth.Login(f.ctx, "nobody@example.com", "secret123")
			Expect(err).To(MatchError(errors.ErrInvalidCredentials))
		})

		It("rejeita usuários removidos", func() {
			user, err := f.users.FindByEmail(f.ctx, "ana@example.com")
			Expect(err).NotTo(HaveOccurred())
			Expect(f.userSvc.ToggleDeleted(f.ctx, user.ID, user.ID)).To(Succeed())

			_, err = f.auth.Login(f.ctx, "ana@example.com", "secret123")
			Expect(err).To(MatchError(errors.ErrInvalidCredentials))
		})
	})

	Describe("Authenticate", func() {
		It("resolve token válido em principal com a authority do papel", func() {
			user := f.register("ana@example.com", roleID)
			token, err := f.auth.Login(f.ctx, "ana@example.com", "secret123")
			Expect(err).NotTo(HaveOccurred())

			principal, err := f.auth.Authenticate(f.ctx, token)
			Expect(err).NotTo(HaveOccurred())
			Expect(principal).NotTo(BeNil())
			Expect(principal.UserID).To(Equal(user.ID))
			Expect(principal.Email).To(Equal("ana@example.com"))
			Expect(principal.Authority).To(Equal("ROLE_ADMIN"))
		})

		It("trata token inválido como anônimo", func() {
			principal, err := f.auth.Authenticate(f.ctx, "not-a-token")
			Expect(err).NotTo(HaveOccurred())
			Expect(principal).To(BeNil())
		})
	})
})
