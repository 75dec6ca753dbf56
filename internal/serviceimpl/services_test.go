package serviceimpl_test

import (
	"testing"
	"time"

	go_scopes "github.com/PressKit/go-scopes"
	"github.com/PressKit/go-scopes/models"
	"github.com/PressKit/go-scopes/request"
	"github.com/PressKit/go-scopes/scope"
	"github.com/PressKit/go-scopes/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var (
	db            *gorm.DB
	scopesService *go_scopes.ScopesService
)

func TestMain(m *testing.M) {
	// Initialize shared test database
	var err error
	db, err = gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to initialize test database")
	}

	scopesService = go_scopes.NewScopesService(db)

	m.Run()
}

func createUser(t *testing.T, name, email string) *models.User {
	user, err := scopesService.Users.CreateUser(request.CreateUserRequest{Name: name, Email: email})
	assert.NoError(t, err, "failed to create user")
	assert.NotNil(t, user)
	assert.Equal(t, name, user.Name)
	assert.Equal(t, email, user.Email)
	return user
}

func createPost(t *testing.T, req request.CreatePostRequest) *models.Post {
	post, err := scopesService.Posts.CreatePost(req)
	assert.NoError(t, err, "failed to create post")
	assert.NotNil(t, post)
	assert.Equal(t, req.Title, post.Title)
	assert.Equal(t, req.AuthorID, post.AuthorID)
	assert.Equal(t, "draft", post.Status)
	if req.Slug != nil {
		assert.Equal(t, *req.Slug, post.Slug)
	} else {
		assert.NotEmpty(t, post.Slug)
	}
	return post
}

func createComment(t *testing.T, postID, authorID uint, body string) *models.Comment {
	comment, err := scopesService.Comments.CreateComment(request.CreateCommentRequest{
		PostID:   postID,
		AuthorID: authorID,
		Body:     body,
	})
	assert.NoError(t, err, "failed to create comment")
	assert.NotNil(t, comment)
	assert.Equal(t, "pending", comment.Status)
	assert.Nil(t, comment.PublishedAt)
	return comment
}

func TestCreateUserValidation(t *testing.T) {
	_, err := scopesService.Users.CreateUser(request.CreateUserRequest{Email: "noname@example.com"})
	assert.Error(t, err)

	_, err = scopesService.Users.CreateUser(request.CreateUserRequest{Name: "No Email"})
	assert.Error(t, err)

	createUser(t, "Dana", "dana@example.com")
	_, err = scopesService.Users.CreateUser(request.CreateUserRequest{Name: "Dana Again", Email: "dana@example.com"})
	assert.Error(t, err, "duplicate email should be rejected")
}

func TestCreatePostValidation(t *testing.T) {
	user := createUser(t, "Eli", "eli@example.com")

	_, err := scopesService.Posts.CreatePost(request.CreatePostRequest{AuthorID: user.ID})
	assert.Error(t, err, "title is required")

	_, err = scopesService.Posts.CreatePost(request.CreatePostRequest{AuthorID: 99999, Title: "Orphan"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")

	negative := decimal.RequireFromString("-1")
	_, err = scopesService.Posts.CreatePost(request.CreatePostRequest{AuthorID: user.ID, Title: "Paid", Price: &negative})
	assert.Error(t, err)
}

func TestCreateAndGetPosts(t *testing.T) {
	user := createUser(t, "Fay", "fay@example.com")

	createPost(t, request.CreatePostRequest{AuthorID: user.ID, Title: "Go Concurrency Patterns"})
	createPost(t, request.CreatePostRequest{AuthorID: user.ID, Title: "SQLite Internals", Slug: utils.StringPtr("sqlite-internals")})
	third := createPost(t, request.CreatePostRequest{AuthorID: user.ID, Title: "Go Modules Deep Dive"})

	_, err := scopesService.Posts.PublishPost(third.ID, nil)
	assert.NoError(t, err)

	posts, count, err := scopesService.Posts.GetPosts(request.GetPostsRequest{AuthorID: &user.ID})
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.Len(t, posts, 3)

	posts, count, err = scopesService.Posts.GetPosts(request.GetPostsRequest{
		AuthorID: &user.ID,
		Statuses: []string{"draft"},
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.Len(t, posts, 2)

	posts, _, err = scopesService.Posts.GetPosts(request.GetPostsRequest{
		AuthorID: &user.ID,
		Title:    utils.StringPtr("Go"),
	})
	assert.NoError(t, err)
	assert.Len(t, posts, 2)

	posts, count, err = scopesService.Posts.GetPosts(request.GetPostsRequest{
		AuthorID: &user.ID,
		PaginationConditions: request.PaginationConditions{
			Limit:  utils.IntPtr(1),
			SortBy: utils.StringPtr("id"),
			Order:  utils.StringPtr("DESC"),
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count, "count ignores pagination")
	assert.Len(t, posts, 1)
	assert.Equal(t, third.ID, posts[0].ID)
}

func TestUpdatePost(t *testing.T) {
	user := createUser(t, "Gus", "gus@example.com")
	post := createPost(t, request.CreatePostRequest{AuthorID: user.ID, Title: "Draft Title"})

	price := decimal.RequireFromString("9.99")
	updated, err := scopesService.Posts.UpdatePost(post.ID, request.UpdatePostRequest{
		Title:  utils.StringPtr("Final Title"),
		Body:   utils.StringPtr("full text"),
		Price:  &price,
		Meta:   utils.StringPtr(`{"tag":"databases"}`),
		Status: utils.StringPtr("archived"),
	})
	assert.NoError(t, err)
	assert.Equal(t, "Final Title", updated.Title)
	assert.Equal(t, "archived", updated.Status)

	posts, _, err := scopesService.Posts.GetPosts(request.GetPostsRequest{ID: &post.ID})
	assert.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.Equal(t, "Final Title", posts[0].Title)
	assert.NotNil(t, posts[0].Price)
	assert.True(t, posts[0].Price.Equal(price))

	negative := decimal.RequireFromString("-2")
	_, err = scopesService.Posts.UpdatePost(post.ID, request.UpdatePostRequest{Price: &negative})
	assert.Error(t, err)

	_, err = scopesService.Posts.UpdatePost(999999, request.UpdatePostRequest{Title: utils.StringPtr("x")})
	assert.Error(t, err)
}

func TestPublishPostAndWorker(t *testing.T) {
	user := createUser(t, "Hana", "hana@example.com")

	immediate := createPost(t, request.CreatePostRequest{AuthorID: user.ID, Title: "Ship It"})
	published, err := scopesService.Posts.PublishPost(immediate.ID, nil)
	assert.NoError(t, err)
	assert.NotNil(t, published)

	posts, _, err := scopesService.Posts.GetPosts(request.GetPostsRequest{ID: &immediate.ID})
	assert.NoError(t, err)
	assert.Len(t, posts, 1)
	assert.Equal(t, "published", posts[0].Status)
	assert.NotNil(t, posts[0].PublishedAt)

	// Schedule a post in the future, then move the clock by rewriting the
	// publish instant to the past before running the worker.
	scheduled := createPost(t, request.CreatePostRequest{AuthorID: user.ID, Title: "Later"})
	future := time.Now().Add(24 * time.Hour)
	_, err = scopesService.Posts.PublishPost(scheduled.ID, &future)
	assert.NoError(t, err)

	posts, _, err = scopesService.Posts.GetPosts(request.GetPostsRequest{ID: &scheduled.ID})
	assert.NoError(t, err)
	assert.Equal(t, "draft", posts[0].Status, "future publish keeps the post a draft")

	err = db.Model(&models.Post{}).Where("id = ?", scheduled.ID).
		Update("published_at", time.Now().Add(-time.Hour)).Error
	assert.NoError(t, err)

	assert.NoError(t, scopesService.Worker.PublishScheduledPosts())

	posts, _, err = scopesService.Posts.GetPosts(request.GetPostsRequest{ID: &scheduled.ID})
	assert.NoError(t, err)
	assert.Equal(t, "published", posts[0].Status)
}

func TestGetLatestViaService(t *testing.T) {
	// A publish window far in the past keeps the other tests' posts out of
	// this ordering.
	base := time.Date(2001, 1, 1, 12, 0, 0, 0, time.UTC)
	older := base.Add(-2 * time.Hour)
	newer := base.Add(-1 * time.Hour)
	commentAt := base.Add(-30 * time.Minute)

	user := createUser(t, "Iris", "iris@example.com")
	oldPost := createPost(t, request.CreatePostRequest{AuthorID: user.ID, Title: "Archive One"})
	newPost := createPost(t, request.CreatePostRequest{AuthorID: user.ID, Title: "Archive Two"})

	_, err := scopesService.Posts.PublishPost(oldPost.ID, &older)
	assert.NoError(t, err)
	_, err = scopesService.Posts.PublishPost(newPost.ID, &newer)
	assert.NoError(t, err)

	visible := createComment(t, newPost.ID, user.ID, "seen")
	_, err = scopesService.Comments.PublishComment(visible.ID, &commentAt)
	assert.NoError(t, err)
	createComment(t, newPost.ID, user.ID, "still pending")

	overviews, err := scopesService.Posts.GetLatest(scope.LatestRequest{Before: &base})
	assert.NoError(t, err)
	assert.Len(t, overviews, 2)
	assert.Equal(t, "Archive Two", overviews[0].Title)
	assert.Equal(t, "Iris", overviews[0].AuthorName)
	assert.Equal(t, int64(1), overviews[0].CommentsCount, "pending comment is not counted")
	assert.Equal(t, "Archive One", overviews[1].Title)
	assert.Equal(t, int64(0), overviews[1].CommentsCount)

	_, err = scopesService.Posts.GetLatest(scope.LatestRequest{Limit: utils.IntPtr(-1)})
	assert.Error(t, err)
}

func TestAuthorStats(t *testing.T) {
	user := createUser(t, "Jo", "jo@example.com")

	priced := decimal.RequireFromString("10.50")
	cheap := decimal.RequireFromString("2.25")
	first := createPost(t, request.CreatePostRequest{AuthorID: user.ID, Title: "Paid Guide", Price: &priced})
	createPost(t, request.CreatePostRequest{AuthorID: user.ID, Title: "Cheap Guide", Price: &cheap})

	createComment(t, first.ID, user.ID, "one")
	createComment(t, first.ID, user.ID, "two")
	createComment(t, first.ID, user.ID, "three")

	stats, count, err := scopesService.Stats.GetAuthorStats(request.GetUsersRequest{Email: &user.Email})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Len(t, stats, 1)
	assert.Equal(t, user.ID, stats[0].ID)
	assert.Equal(t, "Jo", stats[0].Name)
	assert.Equal(t, int64(2), stats[0].PostCount)
	assert.Equal(t, int64(3), stats[0].CommentCount)
	assert.True(t, stats[0].TotalRevenue.Equal(decimal.RequireFromString("12.75")),
		"expected 12.75, got %s", stats[0].TotalRevenue)
}

func TestFeedRules(t *testing.T) {
	user := createUser(t, "Kim", "kim@example.com")

	price := decimal.RequireFromString("4.00")
	createPost(t, request.CreatePostRequest{AuthorID: user.ID, Title: "Free Go Post", Meta: utils.StringPtr(`{"tag":"go"}`)})
	createPost(t, request.CreatePostRequest{AuthorID: user.ID, Title: "Paid Rust Post", Meta: utils.StringPtr(`{"tag":"rust"}`), Price: &price})
	createPost(t, request.CreatePostRequest{AuthorID: user.ID, Title: "Untagged Post"})

	assert.Error(t, scopesService.Feed.AddRule("", "free"))
	assert.Error(t, scopesService.Feed.AddRule("broken", `title ==`))
	assert.Error(t, scopesService.Feed.AddRule("not-bool", `1 + 2`))
	assert.Error(t, scopesService.Feed.RemoveRule("ghost"))

	assert.NoError(t, scopesService.Feed.AddRule("free-only", `free`))
	assert.NoError(t, scopesService.Feed.AddRule("go-only", `meta("tag") == "go"`))

	feed, err := scopesService.Feed.GetFeed(request.GetPostsRequest{AuthorID: &user.ID})
	assert.NoError(t, err)
	assert.Len(t, feed, 1)
	assert.Equal(t, "Free Go Post", feed[0].Title)

	assert.NoError(t, scopesService.Feed.RemoveRule("go-only"))

	feed, err = scopesService.Feed.GetFeed(request.GetPostsRequest{AuthorID: &user.ID})
	assert.NoError(t, err)
	assert.Len(t, feed, 2)
}

func TestCommentLifecycle(t *testing.T) {
	user := createUser(t, "Lou", "lou@example.com")
	post := createPost(t, request.CreatePostRequest{AuthorID: user.ID, Title: "Open Thread"})

	_, err := scopesService.Comments.CreateComment(request.CreateCommentRequest{PostID: 99999, AuthorID: user.ID, Body: "hi"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")

	_, err = scopesService.Comments.CreateComment(request.CreateCommentRequest{PostID: post.ID, AuthorID: user.ID})
	assert.Error(t, err, "body is required")

	comment := createComment(t, post.ID, user.ID, "first!")

	comments, count, err := scopesService.Comments.GetComments(request.GetCommentsRequest{
		PostID:      &post.ID,
		IsPublished: utils.BoolPtr(false),
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Len(t, comments, 1)

	published, err := scopesService.Comments.PublishComment(comment.ID, nil)
	assert.NoError(t, err)
	assert.NotNil(t, published)

	comments, _, err = scopesService.Comments.GetComments(request.GetCommentsRequest{
		PostID:   &post.ID,
		Statuses: []string{"published"},
	})
	assert.NoError(t, err)
	assert.Len(t, comments, 1)
	assert.Equal(t, "first!", comments[0].Body)
	assert.NotNil(t, comments[0].PublishedAt)
}
