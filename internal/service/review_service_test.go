package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hanafi-dev/sentra-portal-api/internal/models"
	"github.com/hanafi-dev/sentra-portal-api/internal/service"
	"github.com/hanafi-dev/sentra-portal-api/internal/store"
	"github.com/hanafi-dev/sentra-portal-api/pkg/ai"
)

// stubReviewer answers every call from the replies channel, so tests control
// exactly when the asynchronous cycle finishes.
type stubReviewer struct {
	replies chan reviewReply
}

type reviewReply struct {
	result ai.ReviewResult
	err    error
}

func newStubReviewer() *stubReviewer {
	return &stubReviewer{replies: make(chan reviewReply, 4)}
}

func (s *stubReviewer) Review(ctx context.Context, _ ai.ReviewInput) (ai.ReviewResult, error) {
	select {
	case reply := <-s.replies:
		return reply.result, reply.err
	case <-ctx.Done():
		return ai.ReviewResult{}, ctx.Err()
	}
}

func newReviewService(env *testEnv, reviewer ai.Reviewer) service.ReviewService {
	return service.NewReviewService(env.store, env.notifier, reviewer, time.Minute, env.logger)
}

func seedCourseFile(env *testEnv, id string) {
	env.store.UpdateCourseFiles(env.ctx, func(files []models.CourseFile) []models.CourseFile {
		return append(files, models.CourseFile{
			ID:          id,
			FacultyName: "Prof. Lata",
			Department:  "CSE",
			Subject:     "Data Structures",
			Term:        "2026-even",
			Files:       []models.FileDescriptor{{Name: "syllabus.pdf"}},
			Status:      models.CourseFilePendingReview,
		})
	})
}

func courseFile(t *testing.T, env *testEnv, id string) models.CourseFile {
	t.Helper()

	for _, file := range env.store.CourseFiles() {
		if file.ID == id {
			return file
		}
	}
	t.Fatalf("course file %q not found", id)
	return models.CourseFile{}
}

func reviewStatus(env *testEnv, id string) models.ReviewStatus {
	for _, file := range env.store.CourseFiles() {
		if file.ID == id && file.AIReview != nil {
			return file.AIReview.Status
		}
	}
	return ""
}

func TestRequestReviewWithoutProviderOnlyWarns(t *testing.T) {
	env := newTestEnv(t)
	seedCourseFile(env, "cf1")
	reviews := newReviewService(env, nil)

	reviews.RequestReview(env.ctx, "cf1")

	require.Nil(t, courseFile(t, env, "cf1").AIReview)
	require.Empty(t, env.store.AuditLog())
	require.Contains(t, env.notificationMessages(), "AI review is not configured on this installation.")
}

func TestRequestReviewUnknownIDHasNoEffect(t *testing.T) {
	env := newTestEnv(t)
	seedCourseFile(env, "cf1")
	reviews := newReviewService(env, newStubReviewer())

	events, cancel := env.store.Subscribe(store.CollectionCourseFiles)
	defer cancel()

	reviews.RequestReview(env.ctx, "no-such-file")

	require.Nil(t, courseFile(t, env, "cf1").AIReview)
	require.Empty(t, env.notifier.Active())

	// Subscribers must not be woken by a request that changed nothing.
	select {
	case event := <-events:
		t.Fatalf("unexpected change event for %q", event.Collection)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestRequestReviewSetsPendingSynchronously(t *testing.T) {
	env := newTestEnv(t)
	seedCourseFile(env, "cf1")
	reviewer := newStubReviewer()
	reviews := newReviewService(env, reviewer)

	reviews.RequestReview(env.ctx, "cf1")

	// The provider has not answered yet; the pending marker must already be
	// visible.
	got := courseFile(t, env, "cf1")
	require.NotNil(t, got.AIReview)
	require.Equal(t, models.ReviewPending, got.AIReview.Status)
	require.Equal(t, uint64(1), got.ReviewGeneration)

	reviewer.replies <- reviewReply{result: ai.ReviewResult{Summary: "Looks complete."}}

	require.Eventually(t, func() bool {
		return reviewStatus(env, "cf1") == models.ReviewComplete
	}, 2*time.Second, 10*time.Millisecond)
}

func TestReviewCompletesWithProviderResult(t *testing.T) {
	env := newTestEnv(t)
	seedCourseFile(env, "cf1")
	reviewer := newStubReviewer()
	reviewer.replies <- reviewReply{result: ai.ReviewResult{
		Summary:     "Bundle is in good shape.",
		Suggestions: []string{"Add a marking scheme."},
		Corrections: []ai.Correction{{Original: "teh", Corrected: "the"}},
	}}
	reviews := newReviewService(env, reviewer)

	reviews.RequestReview(env.ctx, "cf1")

	require.Eventually(t, func() bool {
		return reviewStatus(env, "cf1") == models.ReviewComplete
	}, 2*time.Second, 10*time.Millisecond)

	review := courseFile(t, env, "cf1").AIReview
	require.Equal(t, "Bundle is in good shape.", review.Summary)
	require.Equal(t, []string{"Add a marking scheme."}, review.Suggestions)
	require.Len(t, review.Corrections, 1)

	require.Eventually(t, func() bool {
		for _, message := range env.notificationMessages() {
			if message == "AI review completed for Data Structures." {
				return true
			}
		}
		return false
	}, 2*time.Second, 10*time.Millisecond)
}

func TestReviewFailureKeepsPortalUsable(t *testing.T) {
	env := newTestEnv(t)
	seedCourseFile(env, "cf1")
	reviewer := newStubReviewer()
	reviewer.replies <- reviewReply{err: errors.New("provider unavailable")}
	reviews := newReviewService(env, reviewer)

	reviews.RequestReview(env.ctx, "cf1")

	require.Eventually(t, func() bool {
		return reviewStatus(env, "cf1") == models.ReviewFailed
	}, 2*time.Second, 10*time.Millisecond)

	review := courseFile(t, env, "cf1").AIReview
	require.NotEmpty(t, review.Summary)
	require.Empty(t, review.Suggestions)

	require.Eventually(t, func() bool {
		for _, message := range env.notificationMessages() {
			if message == "AI review failed for Data Structures." {
				return true
			}
		}
		return false
	}, 2*time.Second, 10*time.Millisecond)
}

func TestReviewRestartsFromTerminalState(t *testing.T) {
	env := newTestEnv(t)
	seedCourseFile(env, "cf1")
	reviewer := newStubReviewer()
	reviewer.replies <- reviewReply{err: errors.New("provider unavailable")}
	reviews := newReviewService(env, reviewer)

	reviews.RequestReview(env.ctx, "cf1")
	require.Eventually(t, func() bool {
		return reviewStatus(env, "cf1") == models.ReviewFailed
	}, 2*time.Second, 10*time.Millisecond)

	reviewer.replies <- reviewReply{result: ai.ReviewResult{Summary: "Second attempt succeeded."}}
	reviews.RequestReview(env.ctx, "cf1")

	require.Eventually(t, func() bool {
		return reviewStatus(env, "cf1") == models.ReviewComplete
	}, 2*time.Second, 10*time.Millisecond)
	require.Equal(t, uint64(2), courseFile(t, env, "cf1").ReviewGeneration)
}

func TestStaleProviderResponseIsDiscarded(t *testing.T) {
	env := newTestEnv(t)
	seedCourseFile(env, "cf1")
	reviewer := newStubReviewer()
	reviews := newReviewService(env, reviewer)

	reviews.RequestReview(env.ctx, "cf1")
	require.Equal(t, models.ReviewPending, reviewStatus(env, "cf1"))

	// A competing cycle takes over before the provider answers.
	env.store.UpdateCourseFiles(env.ctx, func(files []models.CourseFile) []models.CourseFile {
		for i := range files {
			if files[i].ID == "cf1" {
				files[i].ReviewGeneration++
			}
		}
		return files
	})

	reviewer.replies <- reviewReply{result: ai.ReviewResult{Summary: "Stale answer."}}

	// The stale result must never be applied.
	require.Never(t, func() bool {
		review := courseFile(t, env, "cf1").AIReview
		return review != nil && review.Summary == "Stale answer."
	}, 300*time.Millisecond, 20*time.Millisecond)
	require.Equal(t, models.ReviewPending, reviewStatus(env, "cf1"))
}
