package services_test

import (
	stderrors "errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fatec/pi-back/internal/domain/entities"
	"github.com/fatec/pi-back/internal/domain/errors"
	"github.com/fatec/pi-back/internal/services"
)

func expectNotFound(err error, resource string, id int64) {
	GinkgoHelper()
	var notFound *errors.NotFoundError
	Expect(stderrors.As(err, &notFound)).To(BeTrue(), "esperava NotFoundError, obteve %v", err)
	Expect(notFound.Resource).To(Equal(resource))
	Expect(notFound.ID).To(Equal(id))
}

var _ = Describe("serviços de entidades", func() {
	var (
		f     *fixture
		actor *entities.User
	)

	BeforeEach(func() {
		f = newFixture()
		actor = f.register("admin@example.com", f.role("admin").ID)
	})

	Describe("PatientService", func() {
		It("cria o paciente com o ID do usuário vinculado", func() {
			linked := f.register("patient@example.com", actor.RoleID)
			birthday := date(1990, time.May, 4)

			patient, err := f.patientSvc.CreatePatient(f.ctx, services.PatientInput{
				UserID:           linked.ID,
				Birthday:         &birthday,
				PatientCondition: "diabetes",
			}, actor.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(patient.ID).To(Equal(linked.ID))
			Expect(patient.CreatedBy).To(HaveValue(Equal(actor.ID)))
			Expect(patient.UpdatedBy).To(HaveValue(Equal(actor.ID)))
			Expect(patient.CreatedAt).To(Equal(patient.UpdatedAt))
		})

		It("rejeita um segundo perfil para o mesmo usuário", func() {
			_, err := f.patientSvc.CreatePatient(f.ctx, services.PatientInput{UserID: actor.ID}, actor.ID)
			Expect(err).NotTo(HaveOccurred())

			_, err = f.patientSvc.CreatePatient(f.ctx, services.PatientInput{UserID: actor.ID}, actor.ID)
			Expect(err).To(MatchError(errors.ErrAlreadyExists))
		})

		It("não persiste nada quando o usuário vinculado não existe", func() {
			_, err := f.patientSvc.CreatePatient(f.ctx, services.PatientInput{UserID: 77}, actor.ID)
			expectNotFound(err, errors.ResourceUser, 77)

			patients, err := f.patientSvc.ListPatients(f.ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(patients).To(BeEmpty())
		})

		It("preserva os carimbos de criação na alteração", func() {
			created, err := f.patientSvc.CreatePatient(f.ctx, services.PatientInput{UserID: actor.ID}, actor.ID)
			Expect(err).NotTo(HaveOccurred())
			other := f.register("nurse@example.com", actor.RoleID)

			updated, err := f.patientSvc.UpdatePatient(f.ctx, created.ID, services.UpdatePatientInput{
				PatientCondition: ptr("hipertensão"),
			}, other.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.PatientCondition).To(Equal("hipertensão"))
			Expect(updated.CreatedBy).To(HaveValue(Equal(actor.ID)))
			Expect(updated.CreatedAt).To(Equal(created.CreatedAt))
			Expect(updated.UpdatedBy).To(HaveValue(Equal(other.ID)))
		})

		It("duas alternâncias restauram o estado original", func() {
			created, err := f.patientSvc.CreatePatient(f.ctx, services.PatientInput{UserID: actor.ID}, actor.ID)
			Expect(err).NotTo(HaveOccurred())

			Expect(f.patientSvc.ToggleDeleted(f.ctx, created.ID, actor.ID)).To(Succeed())
			Expect(f.patientSvc.ToggleDeleted(f.ctx, created.ID, actor.ID)).To(Succeed())

			stored, err := f.patientSvc.GetPatient(f.ctx, created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Deleted).To(BeFalse())
		})

		It("reporta paciente inexistente no toggle", func() {
			err := f.patientSvc.ToggleDeleted(f.ctx, 123, actor.ID)
			expectNotFound(err, errors.ResourcePatient, 123)
		})
	})

	Describe("CaregiverService", func() {
		It("cria o cuidador com o ID do usuário vinculado", func() {
			linked := f.register("carer@example.com", actor.RoleID)

			caregiver, err := f.careSvc.CreateCaregiver(f.ctx, services.CaregiverInput{UserID: linked.ID, Relation: "mãe"}, actor.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(caregiver.ID).To(Equal(linked.ID))
			Expect(caregiver.CreatedBy).To(HaveValue(Equal(actor.ID)))

			stored, err := f.careSvc.GetCaregiver(f.ctx, linked.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Relation).To(Equal("mãe"))
		})

		It("rejeita vínculo vazio", func() {
			_, err := f.careSvc.CreateCaregiver(f.ctx, services.CaregiverInput{UserID: actor.ID, Relation: "  "}, actor.ID)
			Expect(err).To(MatchError(errors.ErrInvalidInput))

			caregivers, err := f.careSvc.ListCaregivers(f.ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(caregivers).To(BeEmpty())
		})

		It("altera o vínculo e carimba o ator", func() {
			created, err := f.careSvc.CreateCaregiver(f.ctx, services.CaregiverInput{UserID: actor.ID, Relation: "pai"}, actor.ID)
			Expect(err).NotTo(HaveOccurred())
			other := f.register("other@example.com", actor.RoleID)

			updated, err := f.careSvc.UpdateCaregiver(f.ctx, created.ID, services.UpdateCaregiverInput{Relation: ptr("responsável legal")}, other.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Relation).To(Equal("responsável legal"))
			Expect(updated.UpdatedBy).To(HaveValue(Equal(other.ID)))
			Expect(updated.CreatedBy).To(HaveValue(Equal(actor.ID)))
		})

		It("reporta cuidador inexistente no toggle", func() {
			err := f.careSvc.ToggleDeleted(f.ctx, 321, actor.ID)
			expectNotFound(err, errors.ResourceCaregiver, 321)
		})
	})

	Describe("HaveService", func() {
		var patient *entities.Patient

		BeforeEach(func() {
			var err error
			patient, err = f.patientSvc.CreatePatient(f.ctx, services.PatientInput{UserID: actor.ID}, actor.ID)
			Expect(err).NotTo(HaveOccurred())
		})

		It("vincula um paciente a um cuidador", func() {
			caregiver, err := f.careSvc.CreateCaregiver(f.ctx, services.CaregiverInput{UserID: actor.ID, Relation: "filha"}, actor.ID)
			Expect(err).NotTo(HaveOccurred())

			have, err := f.haveSvc.CreateHave(f.ctx, services.HaveInput{
				PatientID:   patient.ID,
				CaregiverID: caregiver.ID,
				StartDate:   date(2024, time.January, 1),
			}, actor.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(have.IsOngoing()).To(BeTrue())

			end := date(2024, time.June, 30)
			updated, err := f.haveSvc.UpdateHave(f.ctx, have.ID, services.UpdateHaveInput{EndDate: &end}, actor.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.IsOngoing()).To(BeFalse())
			Expect(updated.StartDate).To(Equal(date(2024, time.January, 1)))
		})

		It("não persiste nada quando o cuidador não existe", func() {
			_, err := f.haveSvc.CreateHave(f.ctx, services.HaveInput{
				PatientID:   patient.ID,
				CaregiverID: 55,
				StartDate:   date(2024, time.January, 1),
			}, actor.ID)
			expectNotFound(err, errors.ResourceCaregiver, 55)

			haves, err := f.haveSvc.ListHaves(f.ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(haves).To(BeEmpty())
		})
	})

	Describe("RelationMPService", func() {
		var (
			patient    *entities.Patient
			medication *entities.Medication
		)

		BeforeEach(func() {
			var err error
			patient, err = f.patientSvc.CreatePatient(f.ctx, services.PatientInput{UserID: actor.ID}, actor.ID)
			Expect(err).NotTo(HaveOccurred())
			medication, err = f.medSvc.CreateMedication(f.ctx, services.MedicationInput{Name: "Dipirona"}, actor.ID)
			Expect(err).NotTo(HaveOccurred())
		})

		input := func() services.RelationMPInput {
			return services.RelationMPInput{
				MedicationID:   medication.ID,
				PatientID:      patient.ID,
				Dosage:         5,
				FrequencyValue: 2,
				FrequencyUnit:  entities.FrequencyDays,
				StartDate:      date(2024, time.January, 1),
				EndDate:        date(2024, time.January, 10),
			}
		}

		It("calcula a dosagem total na criação", func() {
			relation, err := f.relSvc.CreateRelation(f.ctx, input(), actor.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(relation.TotalDosage).To(Equal(25))
		})

		It("recalcula a dosagem total na alteração", func() {
			relation, err := f.relSvc.CreateRelation(f.ctx, input(), actor.ID)
			Expect(err).NotTo(HaveOccurred())

			updated, err := f.relSvc.UpdateRelation(f.ctx, relation.ID, services.UpdateRelationMPInput{
				FrequencyValue: ptr(1),
			}, actor.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.TotalDosage).To(Equal(50))

			hours := entities.FrequencyHours
			updated, err = f.relSvc.UpdateRelation(f.ctx, relation.ID, services.UpdateRelationMPInput{
				FrequencyUnit:  &hours,
				FrequencyValue: ptr(6),
				Dosage:         ptr(2),
				EndDate:        ptr(date(2024, time.January, 1)),
			}, actor.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.TotalDosage).To(Equal(8))
		})

		It("rejeita frequência zero e não persiste nada", func() {
			in := input()
			in.FrequencyValue = 0

			_, err := f.relSvc.CreateRelation(f.ctx, in, actor.ID)
			Expect(err).To(MatchError(errors.ErrInvalidArgument))

			relations, err := f.relSvc.ListRelations(f.ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(relations).To(BeEmpty())
		})

		It("reporta medicamento desconhecido", func() {
			in := input()
			in.MedicationID = 404

			_, err := f.relSvc.CreateRelation(f.ctx, in, actor.ID)
			expectNotFound(err, errors.ResourceMedication, 404)
		})

		It("registra o histórico na prescrição", func() {
			relation, err := f.relSvc.CreateRelation(f.ctx, input(), actor.ID)
			Expect(err).NotTo(HaveOccurred())

			takedAt := time.Date(2024, time.January, 2, 8, 0, 0, 0, time.UTC)
			history, err := f.histSvc.CreateHistory(f.ctx, services.HistoryInput{
				RelationMPID: relation.ID,
				Taked:        true,
				TakedAt:      &takedAt,
			}, actor.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(history.RelationMPID).To(Equal(relation.ID))
			Expect(history.TakedAt).To(HaveValue(Equal(takedAt)))

			_, err = f.histSvc.CreateHistory(f.ctx, services.HistoryInput{RelationMPID: 999}, actor.ID)
			expectNotFound(err, errors.ResourceRelationMP, 999)
		})
	})

	Describe("MedicationService", func() {
		It("altera apenas os campos informados", func() {
			created, err := f.medSvc.CreateMedication(f.ctx, services.MedicationInput{
				Name:               "Losartana",
				MedicationFunction: "anti-hipertensivo",
			}, actor.ID)
			Expect(err).NotTo(HaveOccurred())

			updated, err := f.medSvc.UpdateMedication(f.ctx, created.ID, services.UpdateMedicationInput{
				Name: ptr("Losartana 50mg"),
			}, actor.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Name).To(Equal("Losartana 50mg"))
			Expect(updated.MedicationFunction).To(Equal("anti-hipertensivo"))
		})

		It("aborta a criação quando o ator não existe", func() {
			_, err := f.medSvc.CreateMedication(f.ctx, services.MedicationInput{Name: "Dipirona"}, 999)
			expectNotFound(err, errors.ResourceUser, 999)

			medications, err := f.medSvc.ListMedications(f.ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(medications).To(BeEmpty())
		})
	})

	Describe("RoleService", func() {
		It("alterna sem usuário responsável", func() {
			role := f.role("caregiver")

			Expect(f.roleSvc.ToggleDeleted(f.ctx, role.ID)).To(Succeed())
			stored, err := f.roleSvc.GetRole(f.ctx, role.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Deleted).To(BeTrue())
			Expect(stored.Authority()).To(Equal("ROLE_CAREGIVER"))
		})

		It("rejeita nome vazio", func() {
			_, err := f.roleSvc.CreateRole(f.ctx, services.RoleInput{Name: " "})
			Expect(err).To(MatchError(errors.ErrInvalidInput))
		})
	})
})
