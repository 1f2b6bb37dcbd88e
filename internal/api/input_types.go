package api

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/terraincognita07/emotrack/internal/models"
	"github.com/terraincognita07/emotrack/internal/security"
	"github.com/terraincognita07/emotrack/internal/services"
)

// userPayload is shared by registration and profile update.
type userPayload struct {
	Name     string `json:"nome" form:"nome"`
	Email    string `json:"email" form:"email"`
	Age      int    `json:"idade" form:"idade"`
	Password string `json:"senha" form:"senha"`
}

func (payload userPayload) Validate() error {
	return validation.ValidateStruct(&payload,
		validation.Field(&payload.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&payload.Email, validation.Required, validation.Length(3, 254), is.Email),
		validation.Field(&payload.Age, validation.Min(0)),
		validation.Field(&payload.Password, validation.Required, validation.Length(security.MinPasswordLength, security.MaxPasswordBytes)),
	)
}

func (payload userPayload) input() services.UserInput {
	return services.UserInput{
		Name:     payload.Name,
		Email:    payload.Email,
		Age:      payload.Age,
		Password: payload.Password,
	}
}

type tokenPayload struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

func (payload tokenPayload) Validate() error {
	return validation.ValidateStruct(&payload,
		validation.Field(&payload.Username, validation.Required),
		validation.Field(&payload.Password, validation.Required),
	)
}

type diaryPayload struct {
	UserID string `json:"user_id" form:"user_id"`
	Date   string `json:"data" form:"data"`
	Text   string `json:"texto" form:"texto"`
}

func (payload diaryPayload) Validate() error {
	return validation.ValidateStruct(&payload,
		validation.Field(&payload.UserID, validation.Required),
		validation.Field(&payload.Date, validation.Required),
		validation.Field(&payload.Text, validation.Required),
	)
}

type emotionPayload struct {
	UserID    string `json:"user_id" form:"user_id"`
	Category  string `json:"tipo" form:"tipo"`
	Intensity int    `json:"intensidade" form:"intensidade"`
}

func (payload emotionPayload) Validate() error {
	return validation.ValidateStruct(&payload,
		validation.Field(&payload.UserID, validation.Required),
		validation.Field(&payload.Category, validation.Required),
		validation.Field(&payload.Intensity,
			validation.Required,
			validation.Min(models.MinEmotionIntensity),
			validation.Max(models.MaxEmotionIntensity),
		),
	)
}

type supportCenterPayload struct {
	Name    string `json:"nome" form:"nome"`
	Phone   string `json:"telefone" form:"telefone"`
	Address string `json:"endereco" form:"endereco"`
}

func (payload supportCenterPayload) Validate() error {
	return validation.ValidateStruct(&payload,
		validation.Field(&payload.Name, validation.Required),
		validation.Field(&payload.Phone, validation.Required),
		validation.Field(&payload.Address, validation.Required),
	)
}

type assessmentPayload struct {
	UserID     string `json:"user_id" form:"user_id"`
	Evaluation string `json:"avaliacao" form:"avaliacao"`
	Date       string `json:"data" form:"data"`
}

func (payload assessmentPayload) Validate() error {
	return validation.ValidateStruct(&payload,
		validation.Field(&payload.UserID, validation.Required),
		validation.Field(&payload.Evaluation, validation.Required),
		validation.Field(&payload.Date, validation.Required),
	)
}
