// Copyright (c) 2025 Worklane
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	uuid "github.com/gofrs/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worklane/worklane-api/comments/models"
	"github.com/worklane/worklane-api/internal/database/postgres"
)

func newTestRepository(t *testing.T) (CommentRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	// The driver name only selects the $N bind style
	client := postgres.NewClientFromDB(sqlx.NewDb(db, "postgres"))
	return NewPostgresCommentRepository(client), mock
}

func commentRows(comments ...*models.Comment) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "author_id", "parent_type", "parent_id", "content",
		"reply_to", "is_edited", "created_at", "updated_at",
	})
	for _, c := range comments {
		var replyTo interface{}
		if c.ReplyTo != nil {
			replyTo = c.ReplyTo.String()
		}
		rows.AddRow(c.ID.String(), c.AuthorID.String(), c.ParentType, c.ParentID.String(),
			c.Content, replyTo, c.IsEdited, c.CreatedAt, c.UpdatedAt)
	}
	return rows
}

func TestPostgresCommentRepository_Create(t *testing.T) {
	ctx := context.Background()

	comment := &models.Comment{
		ID:         uuid.Must(uuid.NewV4()),
		AuthorID:   uuid.Must(uuid.NewV4()),
		ParentType: models.ParentTypeProject,
		ParentID:   uuid.Must(uuid.NewV4()),
		Content:    "hello",
	}

	t.Run("Inserts the comment row", func(t *testing.T) {
		repo, mock := newTestRepository(t)

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO comments")).
			WithArgs(comment.ID, comment.AuthorID, comment.ParentType, comment.ParentID,
				comment.Content, nil, false, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(ctx, comment)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Author foreign key violation maps to a missing row", func(t *testing.T) {
		repo, mock := newTestRepository(t)

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO comments")).
			WillReturnError(&pq.Error{
				Code:   "23503",
				Detail: `Key (author_id)=(deadbeef) is not present in table "profiles".`,
			})

		err := repo.Create(ctx, comment)

		require.Error(t, err)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Contains(t, err.Error(), "user does not exist")
	})

	t.Run("Reply target foreign key violation maps to a missing row", func(t *testing.T) {
		repo, mock := newTestRepository(t)

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO comments")).
			WillReturnError(&pq.Error{
				Code:   "23503",
				Detail: `Key (reply_to)=(deadbeef) is not present in table "comments".`,
			})

		err := repo.Create(ctx, comment)

		require.Error(t, err)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Contains(t, err.Error(), "parent comment does not exist")
	})

	t.Run("Other database errors pass through unmapped", func(t *testing.T) {
		repo, mock := newTestRepository(t)

		boom := errors.New("connection reset")
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO comments")).WillReturnError(boom)

		err := repo.Create(ctx, comment)

		require.Error(t, err)
		assert.NotErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestPostgresCommentRepository_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the comment", func(t *testing.T) {
		repo, mock := newTestRepository(t)

		want := &models.Comment{
			ID:         uuid.Must(uuid.NewV4()),
			AuthorID:   uuid.Must(uuid.NewV4()),
			ParentType: models.ParentTypeTask,
			ParentID:   uuid.Must(uuid.NewV4()),
			Content:    "found it",
			CreatedAt:  time.Now().UTC(),
			UpdatedAt:  time.Now().UTC(),
		}

		mock.ExpectQuery(regexp.QuoteMeta("FROM comments WHERE id = $1")).
			WithArgs(want.ID).
			WillReturnRows(commentRows(want))

		got, err := repo.FindByID(ctx, want.ID)

		require.NoError(t, err)
		assert.Equal(t, want.ID, got.ID)
		assert.Equal(t, want.Content, got.Content)
	})

	t.Run("Missing comment wraps sql.ErrNoRows", func(t *testing.T) {
		repo, mock := newTestRepository(t)

		id := uuid.Must(uuid.NewV4())
		mock.ExpectQuery(regexp.QuoteMeta("FROM comments WHERE id = $1")).
			WithArgs(id).
			WillReturnRows(commentRows())

		got, err := repo.FindByID(ctx, id)

		require.Error(t, err)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestPostgresCommentRepository_FindThread(t *testing.T) {
	ctx := context.Background()
	repo, mock := newTestRepository(t)

	parentID := uuid.Must(uuid.NewV4())
	rootID := uuid.Must(uuid.NewV4())
	replyID := uuid.Must(uuid.NewV4())
	base := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"id", "author_id", "parent_type", "parent_id", "content", "reply_to",
		"is_edited", "created_at", "updated_at", "author_name", "author_photo",
	}).
		AddRow(rootID.String(), uuid.Must(uuid.NewV4()).String(), "task", parentID.String(),
			"root", nil, false, base, base, "Ada", "ada.png").
		AddRow(replyID.String(), uuid.Must(uuid.NewV4()).String(), "task", parentID.String(),
			"reply", rootID.String(), false, base.Add(time.Minute), base.Add(time.Minute), "", "")

	// Storage order is the read contract: ascending (created_at, id)
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY c.created_at ASC, c.id ASC")).
		WithArgs(models.ParentTypeTask, parentID).
		WillReturnRows(rows)

	comments, err := repo.FindThread(ctx, models.ParentTypeTask, parentID)

	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, rootID, comments[0].ID)
	assert.Equal(t, "Ada", comments[0].AuthorName)
	assert.Equal(t, "ada.png", comments[0].AuthorPhoto)
	require.NotNil(t, comments[1].ReplyTo)
	assert.Equal(t, rootID, *comments[1].ReplyTo)
	assert.Equal(t, "", comments[1].AuthorName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCommentRepository_FindAndCount(t *testing.T) {
	ctx := context.Background()

	parentType := models.ParentTypeProject
	parentID := uuid.Must(uuid.NewV4())

	t.Run("Filter builds positional predicates with pagination", func(t *testing.T) {
		repo, mock := newTestRepository(t)

		query := "SELECT " + commentColumns + " FROM comments" +
			" WHERE parent_type = $1 AND parent_id = $2 AND reply_to IS NULL" +
			" ORDER BY created_at ASC, id ASC LIMIT 20 OFFSET 20"

		mock.ExpectQuery(regexp.QuoteMeta(query)).
			WithArgs(parentType, parentID).
			WillReturnRows(commentRows(&models.Comment{
				ID:         uuid.Must(uuid.NewV4()),
				AuthorID:   uuid.Must(uuid.NewV4()),
				ParentType: parentType,
				ParentID:   parentID,
				Content:    "page two",
				CreatedAt:  time.Now().UTC(),
				UpdatedAt:  time.Now().UTC(),
			}))

		comments, err := repo.Find(ctx, CommentFilter{
			ParentType: &parentType,
			ParentID:   &parentID,
			RootOnly:   true,
		}, 20, 20)

		require.NoError(t, err)
		require.Len(t, comments, 1)
		assert.Equal(t, "page two", comments[0].Content)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Count shares the filter predicates", func(t *testing.T) {
		repo, mock := newTestRepository(t)

		authorID := uuid.Must(uuid.NewV4())
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM comments WHERE author_id = $1")).
			WithArgs(authorID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(7)))

		count, err := repo.Count(ctx, CommentFilter{AuthorID: &authorID})

		require.NoError(t, err)
		assert.Equal(t, int64(7), count)
	})
}

func TestPostgresCommentRepository_Update(t *testing.T) {
	ctx := context.Background()

	comment := &models.Comment{
		ID:      uuid.Must(uuid.NewV4()),
		Content: "edited",
	}

	t.Run("Marks the row edited", func(t *testing.T) {
		repo, mock := newTestRepository(t)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE comments")).
			WithArgs(comment.Content, sqlmock.AnyArg(), comment.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(ctx, comment)

		require.NoError(t, err)
		assert.True(t, comment.IsEdited)
	})

	t.Run("Zero rows affected means the comment is gone", func(t *testing.T) {
		repo, mock := newTestRepository(t)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE comments")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(ctx, comment)

		require.Error(t, err)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestPostgresCommentRepository_CascadeDeletes(t *testing.T) {
	ctx := context.Background()

	t.Run("FindReplyIDs expands one frontier level", func(t *testing.T) {
		repo, mock := newTestRepository(t)

		parentA := uuid.Must(uuid.NewV4())
		parentB := uuid.Must(uuid.NewV4())
		childA := uuid.Must(uuid.NewV4())
		childB := uuid.Must(uuid.NewV4())

		mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM comments WHERE reply_to = ANY($1)")).
			WithArgs(pq.Array(uuidStrings([]uuid.UUID{parentA, parentB}))).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).
				AddRow(childA.String()).
				AddRow(childB.String()))

		ids, err := repo.FindReplyIDs(ctx, []uuid.UUID{parentA, parentB})

		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{childA, childB}, ids)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty frontier never touches the database", func(t *testing.T) {
		repo, mock := newTestRepository(t)

		ids, err := repo.FindReplyIDs(ctx, nil)

		require.NoError(t, err)
		assert.Empty(t, ids)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Batch deletes report affected rows per table", func(t *testing.T) {
		repo, mock := newTestRepository(t)

		batch := []uuid.UUID{uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4())}
		arr := pq.Array(uuidStrings(batch))

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM comment_attachments WHERE comment_id = ANY($1)")).
			WithArgs(arr).
			WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM comment_likes WHERE comment_id = ANY($1)")).
			WithArgs(arr).
			WillReturnResult(sqlmock.NewResult(0, 5))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM comments WHERE id = ANY($1)")).
			WithArgs(arr).
			WillReturnResult(sqlmock.NewResult(0, 2))

		links, err := repo.DeleteAttachmentLinks(ctx, batch)
		require.NoError(t, err)
		assert.Equal(t, int64(3), links)

		likes, err := repo.DeleteLikes(ctx, batch)
		require.NoError(t, err)
		assert.Equal(t, int64(5), likes)

		rows, err := repo.DeleteByIDs(ctx, batch)
		require.NoError(t, err)
		assert.Equal(t, int64(2), rows)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty batches delete nothing without SQL", func(t *testing.T) {
		repo, mock := newTestRepository(t)

		rows, err := repo.DeleteByIDs(ctx, nil)
		require.NoError(t, err)
		assert.Zero(t, rows)

		links, err := repo.DeleteAttachmentLinks(ctx, nil)
		require.NoError(t, err)
		assert.Zero(t, links)

		likes, err := repo.DeleteLikes(ctx, nil)
		require.NoError(t, err)
		assert.Zero(t, likes)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresCommentRepository_Likes(t *testing.T) {
	ctx := context.Background()
	commentID := uuid.Must(uuid.NewV4())
	userID := uuid.Must(uuid.NewV4())

	t.Run("First like inserts a row", func(t *testing.T) {
		repo, mock := newTestRepository(t)

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO comment_likes")).
			WithArgs(commentID, userID, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		inserted, err := repo.AddLike(ctx, commentID, userID)

		require.NoError(t, err)
		assert.True(t, inserted)
	})

	t.Run("Duplicate like hits the conflict clause and inserts nothing", func(t *testing.T) {
		repo, mock := newTestRepository(t)

		mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (comment_id, user_id) DO NOTHING")).
			WithArgs(commentID, userID, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 0))

		inserted, err := repo.AddLike(ctx, commentID, userID)

		require.NoError(t, err)
		assert.False(t, inserted)
	})

	t.Run("Like on a missing comment maps to a missing row", func(t *testing.T) {
		repo, mock := newTestRepository(t)

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO comment_likes")).
			WillReturnError(&pq.Error{
				Code:   "23503",
				Detail: `Key (comment_id)=(deadbeef) is not present in table "comments".`,
			})

		inserted, err := repo.AddLike(ctx, commentID, userID)

		require.Error(t, err)
		assert.False(t, inserted)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	t.Run("Unlike reports whether a row existed", func(t *testing.T) {
		repo, mock := newTestRepository(t)

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM comment_likes WHERE comment_id = $1 AND user_id = $2")).
			WithArgs(commentID, userID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		removed, err := repo.RemoveLike(ctx, commentID, userID)

		require.NoError(t, err)
		assert.False(t, removed)
	})
}

func TestPostgresCommentRepository_Attachments(t *testing.T) {
	ctx := context.Background()
	commentID := uuid.Must(uuid.NewV4())
	fileID := uuid.Must(uuid.NewV4())

	t.Run("Linking a file inserts a row", func(t *testing.T) {
		repo, mock := newTestRepository(t)

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO comment_attachments")).
			WithArgs(commentID, fileID, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		linked, err := repo.AddAttachment(ctx, commentID, fileID)

		require.NoError(t, err)
		assert.True(t, linked)
	})

	t.Run("Re-linking the same file is a conflict no-op", func(t *testing.T) {
		repo, mock := newTestRepository(t)

		mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (comment_id, file_id) DO NOTHING")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		linked, err := repo.AddAttachment(ctx, commentID, fileID)

		require.NoError(t, err)
		assert.False(t, linked)
	})

	t.Run("Linking a missing file maps to a missing row", func(t *testing.T) {
		repo, mock := newTestRepository(t)

		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO comment_attachments")).
			WillReturnError(&pq.Error{
				Code:   "23503",
				Detail: `Key (file_id)=(deadbeef) is not present in table "files".`,
			})

		linked, err := repo.AddAttachment(ctx, commentID, fileID)

		require.Error(t, err)
		assert.False(t, linked)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Contains(t, err.Error(), "file does not exist")
	})

	t.Run("Unlinking an absent link reports false", func(t *testing.T) {
		repo, mock := newTestRepository(t)

		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM comment_attachments WHERE comment_id = $1 AND file_id = $2")).
			WithArgs(commentID, fileID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		removed, err := repo.RemoveAttachment(ctx, commentID, fileID)

		require.NoError(t, err)
		assert.False(t, removed)
	})

	t.Run("Bulk load groups confirmed uploads per comment", func(t *testing.T) {
		repo, mock := newTestRepository(t)

		otherComment := uuid.Must(uuid.NewV4())
		fileA := uuid.Must(uuid.NewV4())
		fileB := uuid.Must(uuid.NewV4())

		rows := sqlmock.NewRows([]string{"comment_id", "file_id", "name", "url", "mime_type", "size_bytes"}).
			AddRow(commentID.String(), fileA.String(), "a.png", "https://cdn/a.png", "image/png", int64(100)).
			AddRow(commentID.String(), fileB.String(), "b.pdf", "https://cdn/b.pdf", "application/pdf", int64(200)).
			AddRow(otherComment.String(), fileA.String(), "a.png", "https://cdn/a.png", "image/png", int64(100))

		// Pending and soft-deleted files never surface in thread reads
		mock.ExpectQuery(regexp.QuoteMeta("JOIN files f ON f.id = ca.file_id AND f.status = 'uploaded'")).
			WithArgs(pq.Array(uuidStrings([]uuid.UUID{commentID, otherComment}))).
			WillReturnRows(rows)

		attachments, err := repo.FindAttachmentsForComments(ctx, []uuid.UUID{commentID, otherComment})

		require.NoError(t, err)
		require.Len(t, attachments[commentID], 2)
		assert.Equal(t, "a.png", attachments[commentID][0].Name)
		assert.Equal(t, "b.pdf", attachments[commentID][1].Name)
		require.Len(t, attachments[otherComment], 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No comments means no query", func(t *testing.T) {
		repo, mock := newTestRepository(t)

		attachments, err := repo.FindAttachmentsForComments(ctx, nil)

		require.NoError(t, err)
		assert.Empty(t, attachments)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
