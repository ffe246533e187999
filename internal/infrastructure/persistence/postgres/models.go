package postgres

import (
	"time"

	"gorm.io/datatypes"
)

// AuditColumns são as colunas de auditoria compartilhadas pelos models
type AuditColumns struct {
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time
	CreatedBy *int64 `gorm:"index"`
	UpdatedBy *int64
	Deleted   bool `gorm:"not null;default:false"`
}

// RoleModel é o model GORM para papéis
type RoleModel struct {
	ID          int64  `gorm:"column:id_role;primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(100);not null"`
	Description string `gorm:"type:varchar(500)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Deleted     bool `gorm:"not null;default:false"`
}

func (RoleModel) TableName() string {
	return "role"
}

// UserModel é o model GORM para usuários
type UserModel struct {
	ID       int64  `gorm:"column:id_user;primaryKey;autoIncrement"`
	Email    string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password string `gorm:"type:varchar(255);not null"`
	Name     string `gorm:"type:varchar(255);not null"`
	RoleID   int64  `gorm:"column:role_id;not null;index"`
	AuditColumns
}

func (UserModel) TableName() string {
	return "users"
}

// PatientModel compartilha a chave primária com o usuário
type PatientModel struct {
	ID               int64           `gorm:"column:id_patient;primaryKey;autoIncrement:false"`
	Birthday         *datatypes.Date `gorm:"column:birthday"`
	PatientCondition string          `gorm:"column:patient_condition;type:varchar(1000)"`
	AuditColumns
}

func (PatientModel) TableName() string {
	return "patient"
}

// CaregiverModel compartilha a chave primária com o usuário
type CaregiverModel struct {
	ID       int64  `gorm:"column:id_caregiver;primaryKey;autoIncrement:false"`
	Relation string `gorm:"type:varchar(255);not null"`
	AuditColumns
}

func (CaregiverModel) TableName() string {
	return "caregiver"
}

// HaveModel é o vínculo paciente/cuidador
type HaveModel struct {
	ID          int64           `gorm:"column:id_have;primaryKey;autoIncrement"`
	StartDate   datatypes.Date  `gorm:"column:start_date;not null"`
	EndDate     *datatypes.Date `gorm:"column:end_date"`
	PatientID   int64           `gorm:"column:id_patient;not null;index"`
	CaregiverID int64           `gorm:"column:id_caregiver;not null;index"`
	AuditColumns
}

func (HaveModel) TableName() string {
	return "have"
}

// MedicationModel é o model GORM para medicamentos
type MedicationModel struct {
	ID                 int64  `gorm:"column:id_medication;primaryKey;autoIncrement"`
	Name               string `gorm:"type:varchar(255)"`
	MedicationFunction string `gorm:"column:medication_function;type:varchar(1000)"`
	AuditColumns
}

func (MedicationModel) TableName() string {
	return "medication"
}

// RelationMPModel é a prescrição medicamento/paciente
type RelationMPModel struct {
	ID             int64          `gorm:"column:id_relation_mp;primaryKey;autoIncrement"`
	Dosage         int            `gorm:"not null"`
	FrequencyValue int            `gorm:"column:frequency_value;not null"`
	FrequencyUnit  string         `gorm:"column:frequency_unit;type:varchar(10);not null"`
	TotalDosage    int            `gorm:"column:total_dosage;not null"`
	MedicationID   int64          `gorm:"column:id_medication;not null;index"`
	PatientID      int64          `gorm:"column:id_patient;not null;index"`
	StartDate      datatypes.Date `gorm:"column:start_date;not null"`
	EndDate        datatypes.Date `gorm:"column:end_date;not null"`
	AuditColumns
}

func (RelationMPModel) TableName() string {
	return "relations_mp"
}

// HistoryModel registra administrações de uma prescrição
type HistoryModel struct {
	ID           int64      `gorm:"column:id_history;primaryKey;autoIncrement"`
	Taked        bool       `gorm:"not null"`
	TakedAt      *time.Time `gorm:"column:taked_at"`
	RelationMPID int64      `gorm:"column:id_relation_mp;not null;index"`
	AuditColumns
}

func (HistoryModel) TableName() string {
	return "history"
}

// AllModels lista os models na ordem de migração
func AllModels() []any {
	return []any{
		&RoleModel{},
		&UserModel{},
		&PatientModel{},
		&CaregiverModel{},
		&HaveModel{},
		&MedicationModel{},
		&RelationMPModel{},
		&HistoryModel{},
	}
}
