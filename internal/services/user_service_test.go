package services_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fatec/pi-back/internal/domain/entities"
	"github.com/fatec/pi-back/internal/domain/errors"
	"github.com/fatec/pi-back/internal/services"
)

func ptr[T any](v T) *T {
	return &v
}

var _ = Describe("UserService", func() {
	var (
		f     *fixture
		admin *entities.Role
		user  *entities.User
	)

	BeforeEach(func() {
		f = newFixture()
		admin = f.role("admin")
		user = f.register("ana@example.com", admin.ID)
	})

	It("altera apenas o nome em um patch só de nome", func() {
		updated, err := f.userSvc.UpdateUser(f.ctx, user.ID, services.UpdateUserInput{Name: ptr("Ana Maria")}, user.ID)
		Expect(err).NotTo(HaveOccurred())

		Expect(updated.Name).To(Equal("Ana Maria"))
		Expect(updated.Email).To(Equal(user.Email))
		Expect(updated.PasswordHash).To(Equal(user.PasswordHash))
		Expect(updated.RoleID).To(Equal(admin.ID))
		Expect(updated.UpdatedBy).To(HaveValue(Equal(user.ID)))
	})

	It("gera novo hash para a nova senha", func() {
		updated, err := f.userSvc.UpdateUser(f.ctx, user.ID, services.UpdateUserInput{Password: ptr("new-secret")}, user.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(f.hasher.Compare(updated.PasswordHash, "new-secret")).To(BeTrue())

		_, err = f.auth.Login(f.ctx, "ana@example.com", "new-secret")
		Expect(err).NotTo(HaveOccurred())
	})

	DescribeTable("rejeita patches inválidos",
		func(input services.UpdateUserInput) {
			_, err := f.userSvc.UpdateUser(f.ctx, user.ID, input, user.ID)
			Expect(err).To(MatchError(errors.ErrInvalidInput))

			stored, err := f.users.FindByID(f.ctx, user.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Name).To(Equal("Test User"))
		},
		Entry("nome vazio", services.UpdateUserInput{Name: ptr("  ")}),
		Entry("email vazio", services.UpdateUserInput{Email: ptr("")}),
		Entry("email malformado", services.UpdateUserInput{Email: ptr("not-an-email")}),
		Entry("senha curta", services.UpdateUserInput{Password: ptr("123")}),
		Entry("senha acima de 72 bytes", services.UpdateUserInput{Password: ptr(strings.Repeat("a", 100))}),
		Entry("senha multibyte acima de 72 bytes", services.UpdateUserInput{Password: ptr(strings.Repeat("é", 60))}),
	)

	It("reporta papel desconhecido como não encontrado", func() {
		_, err := f.userSvc.UpdateUser(f.ctx, user.ID, services.UpdateUserInput{RoleID: ptr(int64(42))}, user.ID)
		Expect(err).To(MatchError(errors.ErrNotFound))
	})

	It("rejeita email de outro usuário", func() {
		f.register("bia@example.com", admin.ID)

		_, err := f.userSvc.UpdateUser(f.ctx, user.ID, services.UpdateUserInput{Email: ptr("bia@example.com")}, user.ID)
		Expect(err).To(MatchError(errors.ErrEmailAlreadyExists))
	})

	It("aborta quando o usuário responsável não existe", func() {
		_, err := f.userSvc.UpdateUser(f.ctx, user.ID, services.UpdateUserInput{Name: ptr("X")}, 999)
		Expect(err).To(MatchError(errors.ErrUserNotFound))

		stored, err := f.users.FindByID(f.ctx, user.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(stored.Name).To(Equal("Test User"))
	})

	It("troca a senha pela operação dedicada", func() {
		Expect(f.userSvc.UpdatePassword(f.ctx, user.ID, "other-secret", user.ID)).To(Succeed())

		stored, err := f.userSvc.GetUser(f.ctx, user.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(f.hasher.Compare(stored.PasswordHash, "other-secret")).To(BeTrue())
	})

	It("rejeita senha acima do limite do bcrypt na troca de senha", func() {
		err := f.userSvc.UpdatePassword(f.ctx, user.ID, strings.Repeat("é", 60), user.ID)
		Expect(err).To(MatchError(errors.ErrInvalidInput))

		stored, err := f.userSvc.GetUser(f.ctx, user.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(stored.PasswordHash).To(Equal(user.PasswordHash))
	})

	It("alterna o flag de remoção e volta", func() {
		Expect(f.userSvc.ToggleDeleted(f.ctx, user.ID, user.ID)).To(Succeed())
		stored, err := f.userSvc.GetUser(f.ctx, user.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(stored.Deleted).To(BeTrue())

		Expect(f.userSvc.ToggleDeleted(f.ctx, user.ID, user.ID)).To(Succeed())
		stored, err = f.userSvc.GetUser(f.ctx, user.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(stored.Deleted).To(BeFalse())
	})

	It("lista também usuários removidos", func() {
		Expect(f.userSvc.ToggleDeleted(f.ctx, user.ID, user.ID)).To(Succeed())

		users, err := f.userSvc.ListUsers(f.ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(users).To(HaveLen(1))
	})
})
