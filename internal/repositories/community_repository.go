package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "globetrotter/internal/models/db_models"
)

type CommunityRepository interface {
	CreatePost(ctx context.Context, post *dbm.CommunityPost) error
	ListPosts(ctx context.Context, limit, offset int) ([]dbm.CommunityPost, error)
	FindPost(ctx context.Context, id string) (*dbm.CommunityPost, error)
	// ToggleLike flips the account's like on a post and returns the new state and total.
	ToggleLike(ctx context.Context, postId, accountId uuid.UUID) (bool, int64, error)
	AddComment(ctx context.Context, comment *dbm.PostComment) error
}

type communityRepository struct {
	db *gorm.DB
}

func NewCommunityRepository(db *gorm.DB) CommunityRepository {
	return &communityRepository{db: db}
}

func (r *communityRepository) withPostDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Account").
		Preload("Likes").
		Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("Comments.Account")
}

func (r *communityRepository) CreatePost(ctx context.Context, post *dbm.CommunityPost) error {
	return r.db.WithContext(ctx).Omit("Account").Create(post).Error
}

func (r *communityRepository) ListPosts(ctx context.Context, limit, offset int) ([]dbm.CommunityPost, error) {
	var posts []dbm.CommunityPost
	err := r.withPostDetails(r.db.WithContext(ctx)).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

func (r *communityRepository) FindPost(ctx context.Context, id string) (*dbm.CommunityPost, error) {
	var post dbm.CommunityPost
	err := r.withPostDetails(r.db.WithContext(ctx)).First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *communityRepository) ToggleLike(ctx context.Context, postId, accountId uuid.UUID) (bool, int64, error) {
	var liked bool
	var count int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("post_id = ? AND account_id = ?", postId, accountId).Delete(&dbm.PostLike{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			if err := tx.Create(&dbm.PostLike{PostID: postId, AccountID: accountId}).Error; err != nil {
				return err
			}
			liked = true
		}
		return tx.Model(&dbm.PostLike{}).Where("post_id = ?", postId).Count(&count).Error
	})
	return liked, count, err
}

func (r *communityRepository) AddComment(ctx context.Context, comment *dbm.PostComment) error {
	return r.db.WithContext(ctx).Omit("Account").Create(comment).Error
}
