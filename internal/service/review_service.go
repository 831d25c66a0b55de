package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/hanafi-dev/sentra-portal-api/internal/models"
	"github.com/hanafi-dev/sentra-portal-api/internal/notify"
	"github.com/hanafi-dev/sentra-portal-api/internal/observability"
	"github.com/hanafi-dev/sentra-portal-api/internal/store"
	"github.com/hanafi-dev/sentra-portal-api/pkg/ai"
)

const failedReviewSummary = "The review could not be completed. Please try again later."

// ReviewService drives the asynchronous AI review of course files.
//
// Lifecycle per course file: absent -> pending -> complete | failed, with
// terminal states restartable by a new request. The transition to pending is
// applied synchronously before the provider call starts; the provider
// response is applied only if its generation is still current, so overlapping
// requests cannot clobber a newer cycle with a stale result.
type ReviewService interface {
	List(ctx context.Context) []models.CourseFile
	RequestReview(ctx context.Context, courseFileID string)
}

type reviewService struct {
	store    *store.Store
	notifier *notify.Notifier
	reviewer ai.Reviewer
	timeout  time.Duration
	logger   zerolog.Logger
}

// NewReviewService constructs the review task orchestrator. A nil reviewer
// disables the feature: requests then only queue a warning notification.
func NewReviewService(st *store.Store, notifier *notify.Notifier, reviewer ai.Reviewer, timeout time.Duration, logger zerolog.Logger) ReviewService {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &reviewService{
		store:    st,
		notifier: notifier,
		reviewer: reviewer,
		timeout:  timeout,
		logger:   logger.With().Str("component", "review_service").Logger(),
	}
}

func (s *reviewService) List(ctx context.Context) []models.CourseFile {
	return s.store.CourseFiles()
}

// RequestReview starts (or restarts) the review cycle for one course file.
// An unconfigured provider queues a warning and changes nothing; an unknown
// id returns without any observable effect.
func (s *reviewService) RequestReview(ctx context.Context, courseFileID string) {
	if s.reviewer == nil {
		s.notifier.Push("AI review is not configured on this installation.", notify.TypeWarning)
		observability.ReviewRequests().WithLabelValues("disabled").Inc()
		return
	}

	known := false
	for _, file := range s.store.CourseFiles() {
		if file.ID == courseFileID {
			known = true
			break
		}
	}
	if !known {
		// Unknown ids must not touch the snapshot or wake subscribers.
		return
	}

	var (
		target     models.CourseFile
		generation uint64
		found      bool
	)

	s.store.UpdateCourseFiles(ctx, func(files []models.CourseFile) []models.CourseFile {
		for i := range files {
			if files[i].ID != courseFileID {
				continue
			}
			files[i].ReviewGeneration++
			files[i].AIReview = &models.AIReview{
				Summary:     "",
				Suggestions: []string{},
				Status:      models.ReviewPending,
			}
			target = files[i]
			generation = files[i].ReviewGeneration
			found = true
			break
		}
		return files
	})

	if !found {
		return
	}

	observability.ReviewRequests().WithLabelValues("started").Inc()
	go s.run(target, generation)
}

// run performs the provider call off the request path. The store stays fully
// available while the course file sits in the pending state.
func (s *reviewService) run(file models.CourseFile, generation uint64) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	input := ai.ReviewInput{
		Subject:    file.Subject,
		Term:       file.Term,
		Department: file.Department,
	}
	for _, descriptor := range file.Files {
		input.FileNames = append(input.FileNames, descriptor.Name)
	}

	result, err := s.reviewer.Review(ctx, input)

	review := &models.AIReview{Status: models.ReviewComplete}
	if err != nil {
		s.logger.Warn().Err(err).Str("course_file", file.ID).Msg("review provider call failed")
		review = &models.AIReview{
			Summary:     failedReviewSummary,
			Suggestions: []string{},
			Status:      models.ReviewFailed,
		}
	} else {
		review.Summary = result.Summary
		review.Suggestions = result.Suggestions
		for _, correction := range result.Corrections {
			review.Corrections = append(review.Corrections, models.Correction(correction))
		}
	}

	applied := false
	s.store.UpdateCourseFiles(context.Background(), func(files []models.CourseFile) []models.CourseFile {
		for i := range files {
			if files[i].ID != file.ID {
				continue
			}
			if files[i].ReviewGeneration != generation {
				// A newer request owns the cycle; this result is stale.
				return files
			}
			files[i].AIReview = review
			applied = true
			break
		}
		return files
	})

	if !applied {
		observability.ReviewRequests().WithLabelValues("stale").Inc()
		return
	}

	if review.Status == models.ReviewFailed {
		s.notifier.Push("AI review failed for "+file.Subject+".", notify.TypeError)
		observability.ReviewRequests().WithLabelValues("failed").Inc()
		return
	}

	s.notifier.Push("AI review completed for "+file.Subject+".", notify.TypeSuccess)
	observability.ReviewRequests().WithLabelValues("complete").Inc()
}
