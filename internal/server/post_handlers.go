package server

import (
	"devconnector/internal/middleware"
	"devconnector/internal/models"
	"devconnector/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// TextRequest is the payload for posts and comments.
type TextRequest struct {
	Text string `json:"text"`
}

// CreatePost handles POST /api/posts. The author's name and avatar are
// snapshotted onto the post so listings render without joining users.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req TextRequest
	if err := c.BodyParser(&req); err != nil {
		return respondErr(c, models.NewValidationError("Invalid request body"))
	}
	if err := validation.ValidateText(req.Text); err != nil {
		return respondErr(c, models.NewValidationError(err.Error()))
	}

	user, err := s.userRepo.GetByID(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondErr(c, err)
	}

	post := &models.Post{
		Text:   req.Text,
		Name:   user.Name,
		Avatar: user.Avatar,
		UserID: user.ID,
	}
	if err := s.postRepo.Create(c.UserContext(), post); err != nil {
		return respondErr(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "post created",
		"post_id", post.ID)

	return c.JSON(post)
}

// GetPosts handles GET /api/posts, newest first.
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, err := s.postRepo.List(c.UserContext())
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(posts)
}

// GetPost handles GET /api/posts/:id.
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, ok := parseID(c, "id", "Post")
	if !ok {
		return nil
	}

	post, err := s.postRepo.GetByID(c.UserContext(), postID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id. A missing post is reported before
// ownership is considered, so callers cannot learn who owns deleted posts.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, ok := parseID(c, "id", "Post")
	if !ok {
		return nil
	}

	post, err := s.postRepo.GetByID(c.UserContext(), postID)
	if err != nil {
		return respondErr(c, err)
	}
	if post.UserID != currentUserID(c) {
		return respondErr(c, models.NewUnauthorizedError("User not authorized"))
	}

	if err := s.postRepo.Delete(c.UserContext(), postID); err != nil {
		return respondErr(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "post deleted",
		"post_id", postID)

	return c.JSON(fiber.Map{"msg": "Post removed"})
}

// LikePost handles PUT /api/posts/like/:id and returns the post's like list.
// Liking the same post twice is rejected.
func (s *Server) LikePost(c *fiber.Ctx) error {
	postID, ok := parseID(c, "id", "Post")
	if !ok {
		return nil
	}
	userID := currentUserID(c)

	if _, err := s.postRepo.GetByID(c.UserContext(), postID); err != nil {
		return respondErr(c, err)
	}

	liked, err := s.postRepo.IsLiked(c.UserContext(), userID, postID)
	if err != nil {
		return respondErr(c, err)
	}
	if liked {
		return respondErr(c, models.NewConflictError("Post already liked"))
	}

	if err := s.postRepo.Like(c.UserContext(), userID, postID); err != nil {
		return respondErr(c, err)
	}

	likes, err := s.postRepo.ListLikes(c.UserContext(), postID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(likes)
}

// UnlikePost handles PUT /api/posts/unlike/:id.
func (s *Server) UnlikePost(c *fiber.Ctx) error {
	postID, ok := parseID(c, "id", "Post")
	if !ok {
		return nil
	}
	userID := currentUserID(c)

	if _, err := s.postRepo.GetByID(c.UserContext(), postID); err != nil {
		return respondErr(c, err)
	}

	liked, err := s.postRepo.IsLiked(c.UserContext(), userID, postID)
	if err != nil {
		return respondErr(c, err)
	}
	if !liked {
		return respondErr(c, models.NewConflictError("Post has not yet been liked"))
	}

	if err := s.postRepo.Unlike(c.UserContext(), userID, postID); err != nil {
		return respondErr(c, err)
	}

	likes, err := s.postRepo.ListLikes(c.UserContext(), postID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(likes)
}

// CreateComment handles POST /api/posts/comment/:id and returns the post's
// full comment list, newest first.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	postID, ok := parseID(c, "id", "Post")
	if !ok {
		return nil
	}

	var req TextRequest
	if err := c.BodyParser(&req); err != nil {
		return respondErr(c, models.NewValidationError("Invalid request body"))
	}
	if err := validation.ValidateText(req.Text); err != nil {
		return respondErr(c, models.NewValidationError(err.Error()))
	}

	if _, err := s.postRepo.GetByID(c.UserContext(), postID); err != nil {
		return respondErr(c, err)
	}

	user, err := s.userRepo.GetByID(c.UserContext(), currentUserID(c))
	if err != nil {
		return respondErr(c, err)
	}

	comment := &models.Comment{
		Text:   req.Text,
		Name:   user.Name,
		Avatar: user.Avatar,
		UserID: user.ID,
		PostID: postID,
	}
	if err := s.commentRepo.Create(c.UserContext(), comment); err != nil {
		return respondErr(c, err)
	}

	comments, err := s.commentRepo.ListByPost(c.UserContext(), postID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(comments)
}

// DeleteComment handles DELETE /api/posts/comment/:id/:comment_id. Only the
// comment's author may remove it; exactly the addressed comment is deleted.
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	postID, ok := parseID(c, "id", "Post")
	if !ok {
		return nil
	}
	commentID, ok := parseID(c, "comment_id", "Comment")
	if !ok {
		return nil
	}

	if _, err := s.postRepo.GetByID(c.UserContext(), postID); err != nil {
		return respondErr(c, err)
	}

	comment, err := s.commentRepo.GetByID(c.UserContext(), commentID)
	if err != nil {
		return respondErr(c, err)
	}
	if comment.PostID != postID {
		return respondErr(c, models.NewNotFoundError("Comment"))
	}
	if comment.UserID != currentUserID(c) {
		return respondErr(c, models.NewUnauthorizedError("User not authorized"))
	}

	if err := s.commentRepo.Delete(c.UserContext(), commentID); err != nil {
		return respondErr(c, err)
	}

	comments, err := s.commentRepo.ListByPost(c.UserContext(), postID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(comments)
}
