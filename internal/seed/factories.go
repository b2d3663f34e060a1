package seed

import (
	"strings"

	"devconnector/internal/gravatar"
	"devconnector/internal/models"

	"github.com/brianvoe/gofakeit/v6"
)

// NewFakeUser builds a user with a fake identity and the given password hash.
// The avatar comes from the same gravatar derivation the registration path uses.
func NewFakeUser(passwordHash string) *models.User {
	email := strings.ToLower(gofakeit.Email())
	return &models.User{
		Name:     gofakeit.Name(),
		Email:    email,
		Password: passwordHash,
		Avatar:   gravatar.URL(email, gravatar.DefaultOptions),
	}
}

// NewFakeProfile builds a developer profile for the given user.
func NewFakeProfile(userID uint) *models.Profile {
	skills := make([]string, gofakeit.Number(2, 6))
	for i := range skills {
		skills[i] = gofakeit.ProgrammingLanguage()
	}
	return &models.Profile{
		UserID:   userID,
		Status:   gofakeit.JobTitle(),
		Company:  gofakeit.Company(),
		Website:  gofakeit.URL(),
		Location: gofakeit.City(),
		Skills:   strings.Join(skills, ","),
		Bio:      gofakeit.Sentence(12),
	}
}

// NewFakePost builds a post authored by the given user, with the author's
// name and avatar snapshotted the way the create handler does it.
func NewFakePost(author *models.User) *models.Post {
	return &models.Post{
		Text:   gofakeit.Paragraph(1, 3, 8, " "),
		Name:   author.Name,
		Avatar: author.Avatar,
		UserID: author.ID,
	}
}

// NewFakeComment builds a comment by the given user on the given post.
func NewFakeComment(author *models.User, postID uint) *models.Comment {
	return &models.Comment{
		Text:   gofakeit.Sentence(gofakeit.Number(5, 15)),
		Name:   author.Name,
		Avatar: author.Avatar,
		UserID: author.ID,
		PostID: postID,
	}
}
