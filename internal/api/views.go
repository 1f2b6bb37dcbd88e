package api

import "github.com/terraincognita07/emotrack/internal/models"

// userView is the only public rendering of an identity; the password hash is
// never part of it.
type userView struct {
	ID    string `json:"id"`
	Name  string `json:"nome"`
	Email string `json:"email"`
	Age   int    `json:"idade"`
}

func newUserView(user models.User) userView {
	return userView{ID: user.ID, Name: user.DisplayName, Email: user.Email, Age: user.Age}
}

type diaryView struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Date   string `json:"data"`
	Text   string `json:"texto"`
}

type emotionView struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Category  string `json:"tipo"`
	Intensity int    `json:"intensidade"`
}

type assessmentView struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	Evaluation string `json:"avaliacao"`
	Date       string `json:"data"`
}

func mapViews[T any, V any](records []T, render func(T) V) []V {
	views := make([]V, 0, len(records))
	for _, record := range records {
		views = append(views, render(record))
	}
	return views
}
