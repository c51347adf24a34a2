// Copyright (c) 2025 Worklane
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	uuid "github.com/gofrs/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/worklane/worklane-api/comments/models"
	"github.com/worklane/worklane-api/internal/database/postgres"
)

// postgresCommentRepository implements CommentRepository using raw SQL queries
type postgresCommentRepository struct {
	client *postgres.Client
}

// NewPostgresCommentRepository creates a new PostgreSQL repository for comments
func NewPostgresCommentRepository(client *postgres.Client) CommentRepository {
	return &postgresCommentRepository{client: client}
}

const commentColumns = `id, author_id, parent_type, parent_id, content, reply_to, is_edited, created_at, updated_at`

// Create inserts a new comment
func (r *postgresCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	now := time.Now().UTC()
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = now
	}
	if comment.UpdatedAt.IsZero() {
		comment.UpdatedAt = now
	}

	query := `
		INSERT INTO comments (
			id, author_id, parent_type, parent_id, content, reply_to,
			is_edited, created_at, updated_at
		) VALUES (
			:id, :author_id, :parent_type, :parent_id, :content, :reply_to,
			:is_edited, :created_at, :updated_at
		)`

	_, err := sqlx.NamedExecContext(ctx, r.client.ExecutorFrom(ctx), query, comment)
	if err != nil {
		// Foreign key violations map to missing referenced rows
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23503" {
			if strings.Contains(pgErr.Detail, "author_id") {
				return fmt.Errorf("user does not exist (stale token): %w", sql.ErrNoRows)
			}
			if strings.Contains(pgErr.Detail, "reply_to") {
				return fmt.Errorf("parent comment does not exist: %w", sql.ErrNoRows)
			}
		}
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return nil
}

// FindByID retrieves a comment by its ID
func (r *postgresCommentRepository) FindByID(ctx context.Context, commentID uuid.UUID) (*models.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE id = $1`

	var comment models.Comment
	err := sqlx.GetContext(ctx, r.client.ExecutorFrom(ctx), &comment, query, commentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("comment %s: %w", commentID, sql.ErrNoRows)
		}
		return nil, fmt.Errorf("failed to find comment by ID: %w", err)
	}

	return &comment, nil
}

// FindThread retrieves every comment of one thread as flat ordered rows with
// the author display fields joined in. The hierarchy is applied by the thread
// package on read; rows here stay flat and authoritative.
func (r *postgresCommentRepository) FindThread(ctx context.Context, parentType string, parentID uuid.UUID) ([]*models.ThreadComment, error) {
	query := `
		SELECT
			c.id, c.author_id, c.parent_type, c.parent_id, c.content, c.reply_to,
			c.is_edited, c.created_at, c.updated_at,
			COALESCE(p.display_name, '') AS author_name,
			COALESCE(p.avatar, '') AS author_photo
		FROM comments c
		LEFT JOIN profiles p ON p.id = c.author_id
		WHERE c.parent_type = $1 AND c.parent_id = $2
		ORDER BY c.created_at ASC, c.id ASC`

	comments := []*models.ThreadComment{}
	err := sqlx.SelectContext(ctx, r.client.ExecutorFrom(ctx), &comments, query, parentType, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find thread comments: %w", err)
	}

	return comments, nil
}

// buildFilterQuery translates a CommentFilter into a squirrel builder
func buildFilterQuery(base sq.SelectBuilder, filter CommentFilter) sq.SelectBuilder {
	if filter.ParentType != nil {
		base = base.Where(sq.Eq{"parent_type": *filter.ParentType})
	}
	if filter.ParentID != nil {
		base = base.Where(sq.Eq{"parent_id": *filter.ParentID})
	}
	if filter.AuthorID != nil {
		base = base.Where(sq.Eq{"author_id": *filter.AuthorID})
	}
	if filter.ReplyTo != nil {
		base = base.Where(sq.Eq{"reply_to": *filter.ReplyTo})
	}
	if filter.RootOnly {
		base = base.Where("reply_to IS NULL")
	}
	return base
}

// Find retrieves comments matching the filter criteria with pagination
func (r *postgresCommentRepository) Find(ctx context.Context, filter CommentFilter, limit, offset int) ([]*models.Comment, error) {
	builder := sq.Select(strings.Split(commentColumns, ", ")...).
		From("comments").
		PlaceholderFormat(sq.Dollar).
		OrderBy("created_at ASC", "id ASC")

	builder = buildFilterQuery(builder, filter)

	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}
	if offset > 0 {
		builder = builder.Offset(uint64(offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build comment query: %w", err)
	}

	comments := []*models.Comment{}
	if err := sqlx.SelectContext(ctx, r.client.ExecutorFrom(ctx), &comments, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}

	return comments, nil
}

// Count returns the number of comments matching the filter criteria
func (r *postgresCommentRepository) Count(ctx context.Context, filter CommentFilter) (int64, error) {
	builder := sq.Select("COUNT(*)").
		From("comments").
		PlaceholderFormat(sq.Dollar)

	builder = buildFilterQuery(builder, filter)

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var count int64
	if err := sqlx.GetContext(ctx, r.client.ExecutorFrom(ctx), &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}

	return count, nil
}

// Update persists new content for an existing comment, marking it edited
func (r *postgresCommentRepository) Update(ctx context.Context, comment *models.Comment) error {
	query := `
		UPDATE comments
		SET content = $1, is_edited = TRUE, updated_at = $2
		WHERE id = $3`

	comment.IsEdited = true
	comment.UpdatedAt = time.Now().UTC()

	result, err := r.client.ExecutorFrom(ctx).ExecContext(ctx, query, comment.Content, comment.UpdatedAt, comment.ID)
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("comment %s: %w", comment.ID, sql.ErrNoRows)
	}

	return nil
}

// FindReplyIDs returns the ids of all direct replies to any of the given comments
func (r *postgresCommentRepository) FindReplyIDs(ctx context.Context, parentIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}

	query := `SELECT id FROM comments WHERE reply_to = ANY($1)`

	ids := []uuid.UUID{}
	if err := sqlx.SelectContext(ctx, r.client.ExecutorFrom(ctx), &ids, query, pq.Array(uuidStrings(parentIDs))); err != nil {
		return nil, fmt.Errorf("failed to find reply ids: %w", err)
	}

	return ids, nil
}

// DeleteByIDs removes comment rows by id
func (r *postgresCommentRepository) DeleteByIDs(ctx context.Context, commentIDs []uuid.UUID) (int64, error) {
	if len(commentIDs) == 0 {
		return 0, nil
	}

	query := `DELETE FROM comments WHERE id = ANY($1)`

	result, err := r.client.ExecutorFrom(ctx).ExecContext(ctx, query, pq.Array(uuidStrings(commentIDs)))
	if err != nil {
		return 0, fmt.Errorf("failed to delete comments: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check delete result: %w", err)
	}

	return rows, nil
}

// DeleteAttachmentLinks removes attachment link rows for the given comments.
// The referenced file rows stay untouched; file cleanup is out-of-band.
func (r *postgresCommentRepository) DeleteAttachmentLinks(ctx context.Context, commentIDs []uuid.UUID) (int64, error) {
	if len(commentIDs) == 0 {
		return 0, nil
	}

	query := `DELETE FROM comment_attachments WHERE comment_id = ANY($1)`

	result, err := r.client.ExecutorFrom(ctx).ExecContext(ctx, query, pq.Array(uuidStrings(commentIDs)))
	if err != nil {
		return 0, fmt.Errorf("failed to delete attachment links: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check delete result: %w", err)
	}

	return rows, nil
}

// DeleteLikes removes like rows for the given comments
func (r *postgresCommentRepository) DeleteLikes(ctx context.Context, commentIDs []uuid.UUID) (int64, error) {
	if len(commentIDs) == 0 {
		return 0, nil
	}

	query := `DELETE FROM comment_likes WHERE comment_id = ANY($1)`

	result, err := r.client.ExecutorFrom(ctx).ExecContext(ctx, query, pq.Array(uuidStrings(commentIDs)))
	if err != nil {
		return 0, fmt.Errorf("failed to delete likes: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check delete result: %w", err)
	}

	return rows, nil
}

// AddAttachment inserts a (comment, file) link row
func (r *postgresCommentRepository) AddAttachment(ctx context.Context, commentID, fileID uuid.UUID) (bool, error) {
	query := `
		INSERT INTO comment_attachments (comment_id, file_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (comment_id, file_id) DO NOTHING`

	result, err := r.client.ExecutorFrom(ctx).ExecContext(ctx, query, commentID, fileID, time.Now().UTC())
	if err != nil {
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23503" {
			if strings.Contains(pgErr.Detail, "file_id") {
				return false, fmt.Errorf("file does not exist: %w", sql.ErrNoRows)
			}
			return false, fmt.Errorf("comment does not exist: %w", sql.ErrNoRows)
		}
		return false, fmt.Errorf("failed to add attachment link: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check insert result: %w", err)
	}

	return rows > 0, nil
}

// RemoveAttachment deletes one (comment, file) link row
func (r *postgresCommentRepository) RemoveAttachment(ctx context.Context, commentID, fileID uuid.UUID) (bool, error) {
	query := `DELETE FROM comment_attachments WHERE comment_id = $1 AND file_id = $2`

	result, err := r.client.ExecutorFrom(ctx).ExecContext(ctx, query, commentID, fileID)
	if err != nil {
		return false, fmt.Errorf("failed to remove attachment link: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check delete result: %w", err)
	}

	return rows > 0, nil
}

// FindAttachmentsForComments bulk loads attachment references for multiple
// comments. Only confirmed uploads are surfaced; pending files have no durable
// URL yet and soft-deleted files no longer have a blob behind theirs.
func (r *postgresCommentRepository) FindAttachmentsForComments(ctx context.Context, commentIDs []uuid.UUID) (map[uuid.UUID][]models.AttachmentRef, error) {
	result := make(map[uuid.UUID][]models.AttachmentRef, len(commentIDs))
	if len(commentIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT
			ca.comment_id,
			f.id AS file_id,
			f.name,
			f.url,
			f.mime_type,
			f.size_bytes
		FROM comment_attachments ca
		JOIN files f ON f.id = ca.file_id AND f.status = 'uploaded'
		WHERE ca.comment_id = ANY($1)
		ORDER BY ca.comment_id, ca.created_at ASC`

	var rows []struct {
		CommentID uuid.UUID `db:"comment_id"`
		models.AttachmentRef
	}
	if err := sqlx.SelectContext(ctx, r.client.ExecutorFrom(ctx), &rows, query, pq.Array(uuidStrings(commentIDs))); err != nil {
		return nil, fmt.Errorf("failed to load attachments: %w", err)
	}

	for _, row := range rows {
		result[row.CommentID] = append(result[row.CommentID], row.AttachmentRef)
	}

	return result, nil
}

// AddLike attempts to add a like for a comment
func (r *postgresCommentRepository) AddLike(ctx context.Context, commentID, userID uuid.UUID) (bool, error) {
	query := `
		INSERT INTO comment_likes (comment_id, user_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (comment_id, user_id) DO NOTHING`

	result, err := r.client.ExecutorFrom(ctx).ExecContext(ctx, query, commentID, userID, time.Now().UTC())
	if err != nil {
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23503" {
			return false, fmt.Errorf("comment does not exist: %w", sql.ErrNoRows)
		}
		return false, fmt.Errorf("failed to add like: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check insert result: %w", err)
	}

	return rows > 0, nil
}

// RemoveLike removes a like for a comment
func (r *postgresCommentRepository) RemoveLike(ctx context.Context, commentID, userID uuid.UUID) (bool, error) {
	query := `DELETE FROM comment_likes WHERE comment_id = $1 AND user_id = $2`

	result, err := r.client.ExecutorFrom(ctx).ExecContext(ctx, query, commentID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to remove like: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check delete result: %w", err)
	}

	return rows > 0, nil
}

// CountLikesForComments bulk counts likes for multiple comments
func (r *postgresCommentRepository) CountLikesForComments(ctx context.Context, commentIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	result := make(map[uuid.UUID]int64, len(commentIDs))
	if len(commentIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT comment_id, COUNT(*) AS like_count
		FROM comment_likes
		WHERE comment_id = ANY($1)
		GROUP BY comment_id`

	var rows []struct {
		CommentID uuid.UUID `db:"comment_id"`
		LikeCount int64     `db:"like_count"`
	}
	if err := sqlx.SelectContext(ctx, r.client.ExecutorFrom(ctx), &rows, query, pq.Array(uuidStrings(commentIDs))); err != nil {
		return nil, fmt.Errorf("failed to count likes: %w", err)
	}

	for _, row := range rows {
		result[row.CommentID] = row.LikeCount
	}

	return result, nil
}

// WithTransaction executes a function within a transaction
func (r *postgresCommentRepository) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return r.client.WithTransaction(ctx, fn)
}

// uuidStrings converts uuids into the string form pq.Array can bind
func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
