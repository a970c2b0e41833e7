package router

import (
	"context"
	"errors"
	"math"
	"sort"
	"strconv"
	"sync"
	"time"

	"gamereviews/internal/models"
	"gamereviews/internal/store"

	"github.com/jackc/pgx/v5/pgconn"
)

// memStore is an in-memory store.Store. Review ids are cast the way Postgres
// casts a text parameter to INTEGER, so malformed ids fail with the same codes.
type memStore struct {
	mu         sync.Mutex
	categories []models.Category
	users      []models.User
	reviews    map[int]*models.Review
	comments   []models.Comment
	nextID     int
	now        func() time.Time

	failWith error
	pingErr  error
}

var _ store.Store = (*memStore)(nil)

var baseTime = time.Date(2021, 1, 18, 10, 0, 0, 0, time.UTC)

func seededStore() *memStore {
	s := &memStore{
		categories: []models.Category{
			{Slug: "euro game", Description: "Abstact games that involve little luck"},
			{Slug: "social deduction", Description: "Players attempt to uncover each other's hidden role"},
			{Slug: "dexterity", Description: "Games involving physical skill"},
			{Slug: "children's games", Description: "Games suitable for children"},
		},
		users: []models.User{
			{Username: "mallionaire", Name: "haz", AvatarURL: "https://images.example/mallionaire.jpg"},
			{Username: "philippaclaire9", Name: "philippa", AvatarURL: "https://images.example/philippa.jpg"},
			{Username: "bainesface", Name: "sarah", AvatarURL: "https://images.example/sarah.jpg"},
			{Username: "dav3rid", Name: "dave", AvatarURL: "https://images.example/dave.jpg"},
		},
		reviews: map[int]*models.Review{},
		nextID:  7,
		now:     func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) },
	}

	add := func(id int, title, category, owner string, age time.Duration, votes int) {
		s.reviews[id] = &models.Review{
			ReviewID:     id,
			Title:        title,
			Category:     category,
			Designer:     "Uwe Rosenberg",
			Owner:        owner,
			ReviewBody:   "Farmyard fun!",
			ReviewImgURL: "https://images.example/review.png",
			CreatedAt:    baseTime.Add(-age),
			Votes:        votes,
		}
	}
	add(1, "Agricola", "euro game", "mallionaire", 48*time.Hour, 1)
	add(2, "Jenga", "dexterity", "philippaclaire9", 0, 5)
	add(3, "Ultimate Werewolf", "social deduction", "bainesface", 24*time.Hour, 5)
	add(4, "Dolor reprehenderit", "social deduction", "mallionaire", 72*time.Hour, 7)

	s.comments = []models.Comment{
		{CommentID: 1, ReviewID: 2, Author: "bainesface", Body: "I loved this game too!", Votes: 16, CreatedAt: baseTime.Add(time.Hour)},
		{CommentID: 2, ReviewID: 3, Author: "mallionaire", Body: "My dog loved this game too!", Votes: 13, CreatedAt: baseTime.Add(2 * time.Hour)},
		{CommentID: 3, ReviewID: 3, Author: "philippaclaire9", Body: "I didn't know dogs could play games", Votes: 10, CreatedAt: baseTime.Add(time.Hour)},
		{CommentID: 4, ReviewID: 2, Author: "bainesface", Body: "EPIC board game!", Votes: 16, CreatedAt: baseTime.Add(3 * time.Hour)},
		{CommentID: 5, ReviewID: 2, Author: "mallionaire", Body: "Now this is a story all about how", Votes: 13, CreatedAt: baseTime.Add(4 * time.Hour)},
		{CommentID: 6, ReviewID: 3, Author: "philippaclaire9", Body: "Not sure about dogs, but my cat likes to get involved", Votes: 10, CreatedAt: baseTime.Add(5 * time.Hour)},
	}
	return s
}

// castInt mirrors Postgres: non-integer text is 22P02, outside int4 is 22003.
func castInt(reviewID string) (int, error) {
	n, err := strconv.ParseInt(reviewID, 10, 32)
	if err == nil {
		return int(n), nil
	}
	var numErr *strconv.NumError
	if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
		return 0, &pgconn.PgError{Code: "22003", Message: "value out of range for type integer"}
	}
	return 0, &pgconn.PgError{Code: "22P02", Message: "invalid input syntax for type integer"}
}

func (s *memStore) ListCategories(context.Context) ([]models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}
	return append([]models.Category(nil), s.categories...), nil
}

func (s *memStore) ListUsers(context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}
	return append([]models.User(nil), s.users...), nil
}

func (s *memStore) GetUser(_ context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *memStore) GetReview(_ context.Context, reviewID string) (*models.Review, error) {
	id, err := castInt(reviewID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}
	r, ok := s.reviews[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	out := *r
	return &out, nil
}

func (s *memStore) ListReviews(context.Context) ([]models.ReviewSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWith != nil {
		return nil, s.failWith
	}

	counts := map[int]int{}
	for _, c := range s.comments {
		counts[c.ReviewID]++
	}
	out := make([]models.ReviewSummary, 0, len(s.reviews))
	for _, r := range s.reviews {
		out = append(out, models.ReviewSummary{Review: *r, CommentCount: counts[r.ReviewID]})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ReviewID < out[j].ReviewID
	})
	return out, nil
}

func (s *memStore) IncrementReviewVotes(_ context.Context, reviewID string, inc int) (*models.Review, error) {
	id, err := castInt(reviewID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reviews[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	// pgx refuses to encode a parameter wider than int4; an overflowing sum
	// fails on the server instead.
	if inc > math.MaxInt32 || inc < math.MinInt32 {
		return nil, errors.New("unable to encode into binary format for int4")
	}
	if sum := int64(r.Votes) + int64(inc); sum > math.MaxInt32 || sum < math.MinInt32 {
		return nil, &pgconn.PgError{Code: "22003", Message: "integer out of range"}
	}
	r.Votes += inc
	out := *r
	return &out, nil
}

func (s *memStore) ListComments(_ context.Context, reviewID string) ([]models.Comment, error) {
	id, err := castInt(reviewID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Comment
	for _, c := range s.comments {
		if c.ReviewID == id {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *memStore) InsertComment(_ context.Context, comment *models.Comment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	comment.CommentID = s.nextID
	s.nextID++
	comment.CreatedAt = s.now()
	s.comments = append(s.comments, *comment)
	return nil
}

func (s *memStore) Ping(context.Context) error {
	return s.pingErr
}
