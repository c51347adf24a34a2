// Copyright (c) 2025 Worklane
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package thread reshapes the flat comment rows stored for one parent entity
// into the hierarchical reply tree the client renders. Building is a pure
// transformation over the rows of a single read; nothing here caches state.
package thread

import (
	uuid "github.com/gofrs/uuid"

	"github.com/worklane/worklane-api/comments/models"
)

// Build converts a flat, chronologically ordered comment list into a forest of
// root comments with nested replies.
//
// Two passes, O(n):
//  1. construct a node per comment, keyed by id, preserving input order
//  2. attach each node to its parent's replies when the reply target exists in
//     the batch, otherwise promote it to the root list
//
// A reply whose target id is absent (e.g. a dangling cross-thread reference)
// is promoted to a root rather than dropped, so no comment ever disappears
// from the rendered thread. Input order is preserved at every level, which
// keeps both roots and replies oldest-first as long as the storage layer
// returns rows ascending by (created_at, id).
func Build(flat []*models.ThreadComment) []*models.CommentNode {
	nodes := make(map[uuid.UUID]*models.CommentNode, len(flat))
	order := make([]*models.ThreadComment, 0, len(flat))

	for _, row := range flat {
		if row == nil {
			continue
		}
		nodes[row.ID] = newNode(row)
		order = append(order, row)
	}

	roots := make([]*models.CommentNode, 0, len(order))
	for _, row := range order {
		node := nodes[row.ID]
		if row.ReplyTo != nil {
			if parent, ok := nodes[*row.ReplyTo]; ok && parent != node {
				parent.Replies = append(parent.Replies, node)
				continue
			}
		}
		roots = append(roots, node)
	}

	return roots
}

func newNode(row *models.ThreadComment) *models.CommentNode {
	attachments := row.Attachments
	if attachments == nil {
		attachments = []models.AttachmentRef{}
	}
	return &models.CommentNode{
		ID:        row.ID,
		Content:   row.Content,
		ReplyTo:   row.ReplyTo,
		IsEdited:  row.IsEdited,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
		Author: models.AuthorInfo{
			ID:    row.AuthorID,
			Name:  row.AuthorName,
			Photo: row.AuthorPhoto,
		},
		Attachments: attachments,
		LikeCount:   row.LikeCount,
		Replies:     []*models.CommentNode{},
	}
}

// Size returns the total number of nodes in a forest, replies included.
func Size(forest []*models.CommentNode) int {
	total := 0
	stack := make([]*models.CommentNode, len(forest))
	copy(stack, forest)
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		total++
		stack = append(stack, node.Replies...)
	}
	return total
}
