package usecase

import (
	"cmp"
	"context"
	"iter"
	"slices"
	"sync"
	"time"

	"movie-rating/internal/data/entity"
	"movie-rating/internal/data/repository"
	"movie-rating/pkg/apperror"
	"movie-rating/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// store is an in-memory stand-in for the Postgres repositories.
type store struct {
	mu       sync.Mutex
	nextID   int64
	users    []*entity.User
	sessions []*entity.Session
	movies   []*entity.Movie
	reviews  []*entity.Review
}

func (s *store) id() int64 {
	s.nextID++
	return s.nextID
}

type userStub struct{ *store }

func (r userStub) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == user.Username {
			return apperror.ErrDuplicateUsername
		}
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return apperror.ErrDuplicateEmail
		}
	}
	user.ID = r.id()
	stored := *user
	r.users = append(r.users, &stored)
	return nil
}

func (r userStub) find(match func(*entity.User) bool) *entity.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if match(u) {
			found := *u
			return &found
		}
	}
	return nil
}

func (r userStub) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.ID == id }), nil
}

func (r userStub) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Email == email }), nil
}

func (r userStub) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Username == username }), nil
}

type sessionStub struct{ *store }

func (r sessionStub) Create(ctx context.Context, session *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	session.ID = r.id()
	stored := *session
	r.sessions = append(r.sessions, &stored)
	return nil
}

func (r sessionStub) FindValidSession(ctx context.Context, token uuid.UUID) (*entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sessions {
		if s.Token == token && s.RevokedAt == nil && s.ExpiresAt.After(time.Now()) {
			found := *s
			return &found, nil
		}
	}
	return nil, nil
}

func (r sessionStub) Revoke(ctx context.Context, token uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sessions {
		if s.Token == token && s.RevokedAt == nil {
			now := time.Now()
			s.RevokedAt = &now
			return nil
		}
	}
	return apperror.ErrUnauthorized
}

func (r sessionStub) CleanExpiredSessions(ctx context.Context) (int64, error) {
	return 0, nil
}

type movieStub struct{ *store }

func (r movieStub) Create(ctx context.Context, movie *entity.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	movie.ID = r.id()
	stored := *movie
	r.movies = append(r.movies, &stored)
	return nil
}

func (r movieStub) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.movie(id), nil
}

func (s *store) movie(id int64) *entity.Movie {
	for _, m := range s.movies {
		if m.ID == id {
			found := *m
			return &found
		}
	}
	return nil
}

func (r movieStub) All(ctx context.Context) iter.Seq2[*entity.Movie, error] {
	return func(yield func(*entity.Movie, error) bool) {
		r.mu.Lock()
		movies := slices.Clone(r.movies)
		r.mu.Unlock()

		slices.SortFunc(movies, func(a, b *entity.Movie) int {
			return cmp.Or(cmp.Compare(a.Title, b.Title), cmp.Compare(a.ID, b.ID))
		})
		for _, m := range movies {
			found := *m
			if !yield(&found, nil) {
				return
			}
		}
	}
}

type reviewStub struct{ *store }

func (r reviewStub) Create(ctx context.Context, review *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.movie(review.MovieID) == nil {
		return apperror.NotFound("movie", review.MovieID)
	}
	review.ID = r.id()
	stored := *review
	r.reviews = append(r.reviews, &stored)
	return nil
}

// joined mirrors the users/movies JOIN of the real repository.
func (s *store) joined(review *entity.Review) *entity.Review {
	out := *review
	for _, u := range s.users {
		if u.ID == review.UserID {
			out.AuthorName = u.Username
		}
	}
	if m := s.movie(review.MovieID); m != nil {
		out.MovieTitle = m.Title
	}
	return &out
}

func (r reviewStub) FindByID(ctx context.Context, id int64) (*entity.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rv := range r.reviews {
		if rv.ID == id {
			return r.joined(rv), nil
		}
	}
	return nil, nil
}

func (r reviewStub) filter(match func(*entity.Review) bool) []*entity.Review {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Review, 0)
	for _, rv := range r.reviews {
		if match(rv) {
			out = append(out, r.joined(rv))
		}
	}
	slices.SortFunc(out, func(a, b *entity.Review) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), cmp.Compare(b.ID, a.ID))
	})
	return out
}

func (r reviewStub) FindByMovieID(ctx context.Context, movieID int64) ([]*entity.Review, error) {
	return r.filter(func(rv *entity.Review) bool { return rv.MovieID == movieID }), nil
}

func (r reviewStub) FindByUserID(ctx context.Context, userID int64) ([]*entity.Review, error) {
	return r.filter(func(rv *entity.Review) bool { return rv.UserID == userID }), nil
}

func (r reviewStub) Update(ctx context.Context, review *entity.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rv := range r.reviews {
		if rv.ID == review.ID {
			rv.Rating = review.Rating
			rv.Comment = review.Comment
			return nil
		}
	}
	return apperror.NotFound("review", review.ID)
}

func (r reviewStub) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, rv := range r.reviews {
		if rv.ID == id {
			r.reviews = slices.Delete(r.reviews, i, i+1)
			return nil
		}
	}
	return apperror.NotFound("review", id)
}

func (r reviewStub) GetMovieReviewStats(ctx context.Context, movieID int64) (float64, int64, error) {
	reviews, _ := r.FindByMovieID(ctx, movieID)
	stats := statsFromReviews(movieID, reviews)
	return stats.AverageRating, stats.ReviewCount, nil
}

var testConfig = &utils.Config{
	Session: utils.SessionConfig{Secret: "test-secret", ExpiryHours: 24},
}

func newTestService() (*Service, *store) {
	st := &store{}
	repo := &repository.Repository{
		User:    userStub{st},
		Session: sessionStub{st},
		Movie:   movieStub{st},
		Review:  reviewStub{st},
	}
	return NewService(repo, testConfig, zap.NewNop()), st
}
