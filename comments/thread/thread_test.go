// Copyright (c) 2025 Worklane
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package thread

import (
	"testing"
	"time"

	uuid "github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worklane/worklane-api/comments/models"
)

func row(id uuid.UUID, replyTo *uuid.UUID, content string, createdAt time.Time) *models.ThreadComment {
	return &models.ThreadComment{
		Comment: models.Comment{
			ID:        id,
			AuthorID:  uuid.Must(uuid.NewV4()),
			Content:   content,
			ReplyTo:   replyTo,
			CreatedAt: createdAt,
		},
		AuthorName: "Test User",
	}
}

func TestBuild(t *testing.T) {
	base := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Empty input", func(t *testing.T) {
		roots := Build(nil)
		assert.Empty(t, roots)

		roots = Build([]*models.ThreadComment{})
		assert.Empty(t, roots)
	})

	t.Run("Single comment", func(t *testing.T) {
		id := uuid.Must(uuid.NewV4())
		roots := Build([]*models.ThreadComment{row(id, nil, "hello", base)})

		require.Len(t, roots, 1)
		assert.Equal(t, id, roots[0].ID)
		assert.Empty(t, roots[0].Replies)
		assert.NotNil(t, roots[0].Attachments)
	})

	t.Run("Replies nest under their targets", func(t *testing.T) {
		rootA := uuid.Must(uuid.NewV4())
		rootB := uuid.Must(uuid.NewV4())
		replyA1 := uuid.Must(uuid.NewV4())
		replyA2 := uuid.Must(uuid.NewV4())
		nested := uuid.Must(uuid.NewV4())

		flat := []*models.ThreadComment{
			row(rootA, nil, "root a", base),
			row(rootB, nil, "root b", base.Add(time.Minute)),
			row(replyA1, &rootA, "first reply", base.Add(2*time.Minute)),
			row(replyA2, &rootA, "second reply", base.Add(3*time.Minute)),
			row(nested, &replyA1, "nested", base.Add(4*time.Minute)),
		}

		roots := Build(flat)

		require.Len(t, roots, 2)
		assert.Equal(t, rootA, roots[0].ID)
		assert.Equal(t, rootB, roots[1].ID)

		require.Len(t, roots[0].Replies, 2)
		assert.Equal(t, replyA1, roots[0].Replies[0].ID)
		assert.Equal(t, replyA2, roots[0].Replies[1].ID)

		require.Len(t, roots[0].Replies[0].Replies, 1)
		assert.Equal(t, nested, roots[0].Replies[0].Replies[0].ID)

		assert.Empty(t, roots[1].Replies)
		assert.Equal(t, 5, Size(roots))
	})

	t.Run("Input order preserved at every level", func(t *testing.T) {
		root := uuid.Must(uuid.NewV4())
		flat := []*models.ThreadComment{row(root, nil, "root", base)}

		replyIDs := make([]uuid.UUID, 5)
		for i := range replyIDs {
			replyIDs[i] = uuid.Must(uuid.NewV4())
			flat = append(flat, row(replyIDs[i], &root, "reply", base.Add(time.Duration(i+1)*time.Second)))
		}

		roots := Build(flat)

		require.Len(t, roots, 1)
		require.Len(t, roots[0].Replies, 5)
		for i, reply := range roots[0].Replies {
			assert.Equal(t, replyIDs[i], reply.ID)
		}
	})

	t.Run("Orphan reply promoted to root", func(t *testing.T) {
		missing := uuid.Must(uuid.NewV4())
		orphan := uuid.Must(uuid.NewV4())
		root := uuid.Must(uuid.NewV4())

		flat := []*models.ThreadComment{
			row(root, nil, "root", base),
			row(orphan, &missing, "dangling reply", base.Add(time.Minute)),
		}

		roots := Build(flat)

		require.Len(t, roots, 2)
		assert.Equal(t, root, roots[0].ID)
		assert.Equal(t, orphan, roots[1].ID)
		assert.Equal(t, 2, Size(roots))
	})

	t.Run("Nil rows skipped", func(t *testing.T) {
		id := uuid.Must(uuid.NewV4())
		roots := Build([]*models.ThreadComment{nil, row(id, nil, "only", base), nil})

		require.Len(t, roots, 1)
		assert.Equal(t, id, roots[0].ID)
	})

	t.Run("Rebuild is deterministic", func(t *testing.T) {
		root := uuid.Must(uuid.NewV4())
		reply := uuid.Must(uuid.NewV4())
		flat := []*models.ThreadComment{
			row(root, nil, "root", base),
			row(reply, &root, "reply", base.Add(time.Minute)),
		}

		first := Build(flat)
		second := Build(flat)

		require.Len(t, first, 1)
		require.Len(t, second, 1)
		assert.Equal(t, first[0].ID, second[0].ID)
		require.Len(t, second[0].Replies, 1)
		assert.Equal(t, reply, second[0].Replies[0].ID)
	})
}
