package models

import "time"

// Action tags are part of the audit contract and must stay stable.
const (
	ActionRegisterUser        = "registro_usuario"
	ActionLogin               = "login"
	ActionListUsers           = "listar_usuarios"
	ActionViewUser            = "visualizar_usuario"
	ActionUpdateUser          = "editar_usuario"
	ActionDeleteUser          = "deletar_usuario"
	ActionCreateDiary         = "criar_diario"
	ActionListDiaries         = "listar_diarios"
	ActionCreateEmotion       = "criar_emocao"
	ActionListEmotions        = "listar_emocoes"
	ActionCreateSupportCenter = "criar_centro_apoio"
	ActionCreateAssessment    = "criar_avaliacao"
	ActionListAssessments     = "listar_avaliacoes"
	ActionResetPassword       = "reset_senha"
)

// ActivityLog is append-only; the application never reads it back.
type ActivityLog struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     string    `gorm:"not null;index"`
	Action     string    `gorm:"not null"`
	Details    string    `gorm:"not null;default:''"`
	OccurredAt time.Time `gorm:"not null"`
}
