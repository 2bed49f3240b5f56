package handlers_test

import (
	"net/http"
	"testing"

	"github.com/inkpress-dev/inkpress/internal/handlers"
)

func TestCreateCommentAndListInOrder(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	r := newTestRouter()
	adminToken := registerUser(t, r, "Admin", "admin@example.com", "Secret123")
	memberToken := registerUser(t, r, "Member", "member@example.com", "Secret123")
	createPost(t, r, adminToken, "Commented Post")

	resp := doRequest(t, r, http.MethodPost, "/post/1", map[string]string{"text": "first!"}, memberToken)
	mustStatus(t, resp.Code, http.StatusCreated)

	resp = doRequest(t, r, http.MethodPost, "/post/1", map[string]string{"text": "welcome aboard"}, adminToken)
	mustStatus(t, resp.Code, http.StatusCreated)

	resp = doRequest(t, r, http.MethodGet, "/post/1", nil, "")
	mustStatus(t, resp.Code, http.StatusOK)

	var out struct {
		Post handlers.PostResponse `json:"post"`
	}
	decodeBody(t, resp, &out)

	if len(out.Post.Comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(out.Post.Comments))
	}
	if out.Post.Comments[0].Text != "first!" || out.Post.Comments[1].Text != "welcome aboard" {
		t.Fatalf("expected comments in creation order, got %q then %q",
			out.Post.Comments[0].Text, out.Post.Comments[1].Text)
	}
	if out.Post.Comments[0].Author != "Member" {
		t.Fatalf("expected first comment author Member, got %q", out.Post.Comments[0].Author)
	}
}

func TestCreateCommentOnMissingPost(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	r := newTestRouter()
	registerUser(t, r, "Admin", "admin@example.com", "Secret123")
	memberToken := registerUser(t, r, "Member", "member@example.com", "Secret123")

	resp := doRequest(t, r, http.MethodPost, "/post/42", map[string]string{"text": "hello?"}, memberToken)
	mustStatus(t, resp.Code, http.StatusNotFound)
}

func TestCreateCommentRequiresAuthentication(t *testing.T) {
	cleanup := setupTestDB(t)
	defer cleanup()

	r := newTestRouter()
	adminToken := registerUser(t, r, "Admin", "admin@example.com", "Secret123")
	createPost(t, r, adminToken, "Quiet Post")

	resp := doRequest(t, r, http.MethodPost, "/post/1", map[string]string{"text": "anon"}, "")
	mustStatus(t, resp.Code, http.StatusForbidden)
}
