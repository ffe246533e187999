package postgres

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/fatec/pi-back/internal/domain/entities"
	"github.com/fatec/pi-back/internal/domain/repositories"
	"github.com/fatec/pi-back/internal/domain/valueobjects"
)

// NewRepositories cria todos os repositórios sobre a mesma conexão
func NewRepositories(db *gorm.DB) repositories.Set {
	return repositories.Set{
		Users:       NewUserRepository(db),
		Roles:       NewRoleRepository(db),
		Patients:    NewPatientRepository(db),
		Caregivers:  NewCaregiverRepository(db),
		Haves:       NewHaveRepository(db),
		Medications: NewMedicationRepository(db),
		Relations:   NewRelationMPRepository(db),
		Histories:   NewHistoryRepository(db),
	}
}

func NewRoleRepository(db *gorm.DB) repositories.RoleRepository {
	return newCRUDRepository(db, "id_role", roleToModel, roleToEntity)
}

func NewPatientRepository(db *gorm.DB) repositories.PatientRepository {
	return newCRUDRepository(db, "id_patient", patientToModel, patientToEntity)
}

func NewCaregiverRepository(db *gorm.DB) repositories.CaregiverRepository {
	return newCRUDRepository(db, "id_caregiver", caregiverToModel, caregiverToEntity)
}

func NewHaveRepository(db *gorm.DB) repositories.HaveRepository {
	return newCRUDRepository(db, "id_have", haveToModel, haveToEntity)
}

func NewMedicationRepository(db *gorm.DB) repositories.MedicationRepository {
	return newCRUDRepository(db, "id_medication", medicationToModel, medicationToEntity)
}

func NewRelationMPRepository(db *gorm.DB) repositories.RelationMPRepository {
	return newCRUDRepository(db, "id_relation_mp", relationMPToModel, relationMPToEntity)
}

func NewHistoryRepository(db *gorm.DB) repositories.HistoryRepository {
	return newCRUDRepository(db, "id_history", historyToModel, historyToEntity)
}

// Datas

func toDBDate(d valueobjects.Date) datatypes.Date {
	return datatypes.Date(d.Midnight())
}

func fromDBDate(d datatypes.Date) valueobjects.Date {
	return valueobjects.DateOf(time.Time(d))
}

func toDBDatePtr(d *valueobjects.Date) *datatypes.Date {
	if d == nil {
		return nil
	}
	v := toDBDate(*d)
	return &v
}

func fromDBDatePtr(d *datatypes.Date) *valueobjects.Date {
	if d == nil {
		return nil
	}
	v := fromDBDate(*d)
	return &v
}

// Role não possui colunas de ator; o restante segue AuditColumns

func roleToModel(r *entities.Role) *RoleModel {
	return &RoleModel{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		Deleted:     r.Deleted,
	}
}

func roleToEntity(m *RoleModel) *entities.Role {
	return &entities.Role{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		Deleted:     m.Deleted,
	}
}

func patientToModel(p *entities.Patient) *PatientModel {
	return &PatientModel{
		ID:               p.ID,
		Birthday:         toDBDatePtr(p.Birthday),
		PatientCondition: p.PatientCondition,
		AuditColumns:     auditToColumns(p.Audit),
	}
}

func patientToEntity(m *PatientModel) *entities.Patient {
	return &entities.Patient{
		ID:               m.ID,
		Birthday:         fromDBDatePtr(m.Birthday),
		PatientCondition: m.PatientCondition,
		Audit:            columnsToAudit(m.AuditColumns),
	}
}

func caregiverToModel(c *entities.Caregiver) *CaregiverModel {
	return &CaregiverModel{
		ID:           c.ID,
		Relation:     c.Relation,
		AuditColumns: auditToColumns(c.Audit),
	}
}

func caregiverToEntity(m *CaregiverModel) *entities.Caregiver {
	return &entities.Caregiver{
		ID:       m.ID,
		Relation: m.Relation,
		Audit:    columnsToAudit(m.AuditColumns),
	}
}

func haveToModel(h *entities.Have) *HaveModel {
	return &HaveModel{
		ID:           h.ID,
		StartDate:    toDBDate(h.StartDate),
		EndDate:      toDBDatePtr(h.EndDate),
		PatientID:    h.PatientID,
		CaregiverID:  h.CaregiverID,
		AuditColumns: auditToColumns(h.Audit),
	}
}

func haveToEntity(m *HaveModel) *entities.Have {
	return &entities.Have{
		ID:          m.ID,
		PatientID:   m.PatientID,
		CaregiverID: m.CaregiverID,
		StartDate:   fromDBDate(m.StartDate),
		EndDate:     fromDBDatePtr(m.EndDate),
		Audit:       columnsToAudit(m.AuditColumns),
	}
}

func medicationToModel(m *entities.Medication) *MedicationModel {
	return &MedicationModel{
		ID:                 m.ID,
		Name:               m.Name,
		MedicationFunction: m.MedicationFunction,
		AuditColumns:       auditToColumns(m.Audit),
	}
}

func medicationToEntity(m *MedicationModel) *entities.Medication {
	return &entities.Medication{
		ID:                 m.ID,
		Name:               m.Name,
		MedicationFunction: m.MedicationFunction,
		Audit:              columnsToAudit(m.AuditColumns),
	}
}

func relationMPToModel(r *entities.RelationMP) *RelationMPModel {
	return &RelationMPModel{
		ID:             r.ID,
		Dosage:         r.Dosage,
		FrequencyValue: r.FrequencyValue,
		FrequencyUnit:  string(r.FrequencyUnit),
		TotalDosage:    r.TotalDosage,
		MedicationID:   r.MedicationID,
		PatientID:      r.PatientID,
		StartDate:      toDBDate(r.StartDate),
		EndDate:        toDBDate(r.EndDate),
		AuditColumns:   auditToColumns(r.Audit),
	}
}

func relationMPToEntity(m *RelationMPModel) *entities.RelationMP {
	return &entities.RelationMP{
		ID:             m.ID,
		MedicationID:   m.MedicationID,
		PatientID:      m.PatientID,
		Dosage:         m.Dosage,
		FrequencyValue: m.FrequencyValue,
		FrequencyUnit:  entities.FrequencyUnit(m.FrequencyUnit),
		StartDate:      fromDBDate(m.StartDate),
		EndDate:        fromDBDate(m.EndDate),
		TotalDosage:    m.TotalDosage,
		Audit:          columnsToAudit(m.AuditColumns),
	}
}

func historyToModel(h *entities.History) *HistoryModel {
	return &HistoryModel{
		ID:           h.ID,
		Taked:        h.Taked,
		TakedAt:      h.TakedAt,
		RelationMPID: h.RelationMPID,
		AuditColumns: auditToColumns(h.Audit),
	}
}

func historyToEntity(m *HistoryModel) *entities.History {
	return &entities.History{
		ID:           m.ID,
		RelationMPID: m.RelationMPID,
		Taked:        m.Taked,
		TakedAt:      m.TakedAt,
		Audit:        columnsToAudit(m.AuditColumns),
	}
}
