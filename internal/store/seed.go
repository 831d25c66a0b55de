package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hanafi-dev/sentra-portal-api/internal/models"
)

// InitializeIfEmpty populates the store with demo content on first run.
// It is idempotent: once the seed marker is durable, or the user collection
// already has content, subsequent calls change nothing.
func (s *Store) InitializeIfEmpty(ctx context.Context) {
	s.mu.Lock()

	if s.seeded.Get() || len(s.users.Get()) > 0 {
		s.mu.Unlock()
		return
	}

	now := time.Now().UTC()

	s.users.Replace(ctx, demoUsers(now))
	s.timetable.Replace(ctx, demoTimetable())
	s.announcements.Replace(ctx, demoAnnouncements(now))
	s.resources.Replace(ctx, demoResources(now))
	s.alerts.Replace(ctx, demoAlerts(now))
	s.courseFiles.Replace(ctx, demoCourseFiles(now))
	s.settings.Replace(ctx, models.DefaultSettings())
	s.seeded.Replace(ctx, true)

	s.mu.Unlock()

	s.logger.Info().Msg("store seeded with demo content")
	s.broker.publish(CollectionAll)
}

func demoUsers(now time.Time) []models.User {
	return []models.User{
		{
			ID:         uuid.NewString(),
			Name:       "Admin",
			Password:   "admin",
			Role:       models.RoleAdmin,
			Department: "Administration",
			Status:     models.UserStatusActive,
			CreatedAt:  now,
		},
		{
			ID:         uuid.NewString(),
			Name:       "Dr. Meenakshi Rao",
			Password:   "principal",
			Role:       models.RolePrincipal,
			Department: "Administration",
			Status:     models.UserStatusActive,
			CreatedAt:  now,
		},
		{
			ID:         uuid.NewString(),
			Name:       "Prof. Arvind Kulkarni",
			Password:   "faculty",
			Role:       models.RoleHOD,
			Department: "CSE",
			Status:     models.UserStatusActive,
			CreatedAt:  now,
		},
		{
			ID:         uuid.NewString(),
			Name:       "Prof. Lata Deshmukh",
			Password:   "faculty",
			Role:       models.RoleFaculty,
			Department: "CSE",
			Status:     models.UserStatusActive,
			CreatedAt:  now,
		},
		{
			ID:         uuid.NewString(),
			Name:       "Rahul Sharma",
			Password:   "student",
			Role:       models.RoleStudent,
			Department: "CSE",
			Year:       "3",
			Status:     models.UserStatusActive,
			Performance: &models.Performance{
				AttendedClasses: 52,
				TotalClasses:    60,
				Grades:          []string{"A", "B+", "A"},
			},
			CreatedAt: now,
		},
		{
			ID:         uuid.NewString(),
			Name:       "Priya Nair",
			Password:   "student",
			Role:       models.RoleStudent,
			Department: "ECE",
			Year:       "2",
			Status:     models.UserStatusActive,
			Performance: &models.Performance{
				AttendedClasses: 57,
				TotalClasses:    60,
				Grades:          []string{"A", "A", "A-"},
			},
			CreatedAt: now,
		},
	}
}

func demoTimetable() []models.TimetableEntry {
	return []models.TimetableEntry{
		{ID: uuid.NewString(), Day: "Monday", Period: 1, Subject: "Data Structures", FacultyName: "Prof. Lata Deshmukh", Department: "CSE", Year: "3", Room: "CS-101"},
		{ID: uuid.NewString(), Day: "Monday", Period: 2, Subject: "Operating Systems", FacultyName: "Prof. Arvind Kulkarni", Department: "CSE", Year: "3", Room: "CS-102"},
		{ID: uuid.NewString(), Day: "Tuesday", Period: 1, Subject: "Digital Circuits", Department: "ECE", Year: "2", Room: "EC-201"},
		{ID: uuid.NewString(), Day: "Wednesday", Period: 3, Subject: "Database Systems", FacultyName: "Prof. Lata Deshmukh", Department: "CSE", Year: "3", Room: "CS-103"},
	}
}

func demoAnnouncements(now time.Time) []models.Announcement {
	return []models.Announcement{
		{
			ID:        uuid.NewString(),
			Title:     "Mid-term schedule published",
			Content:   "The mid-term examination schedule is now available on the notice board.",
			Author:    "Admin",
			Timestamp: now.Add(-24 * time.Hour),
			Reactions: map[string][]string{},
		},
		{
			ID:         uuid.NewString(),
			Title:      "CSE department seminar",
			Content:    "Guest lecture on distributed systems this Friday, seminar hall B.",
			Author:     "Prof. Arvind Kulkarni",
			Timestamp:  now.Add(-2 * time.Hour),
			TargetDept: "CSE",
			Reactions:  map[string][]string{},
		},
	}
}

func demoResources(now time.Time) []models.Resource {
	return []models.Resource{
		{
			ID:           uuid.NewString(),
			Name:         "DS Unit 3 Notes.pdf",
			Kind:         "application/pdf",
			Department:   "CSE",
			Subject:      "Data Structures",
			UploaderName: "Prof. Lata Deshmukh",
			Timestamp:    now.Add(-48 * time.Hour),
			Origin:       models.OriginLocal,
		},
		{
			ID:           uuid.NewString(),
			Name:         "OS Lab Manual",
			Kind:         "application/pdf",
			Department:   "CSE",
			Subject:      "Operating Systems",
			UploaderName: "Prof. Arvind Kulkarni",
			Timestamp:    now.Add(-12 * time.Hour),
			Origin:       models.OriginDrive,
		},
	}
}

func demoAlerts(now time.Time) []models.SecurityAlert {
	return []models.SecurityAlert{
		{
			ID:          uuid.NewString(),
			Category:    "authentication",
			Title:       "Repeated failed logins",
			Description: "Five failed login attempts for the same account within two minutes.",
			Timestamp:   now.Add(-6 * time.Hour),
			Severity:    models.SeverityHigh,
			Plan: &models.ResponsePlan{
				RecommendedAction: "Lock the account and notify the owner",
				Steps:             []string{"Verify the attempts", "Lock the account", "Contact the owner"},
			},
		},
		{
			ID:          uuid.NewString(),
			Category:    "data",
			Title:       "Unusual export volume",
			Description: "A single session exported the full directory listing three times.",
			Timestamp:   now.Add(-30 * time.Minute),
			Severity:    models.SeverityMedium,
		},
	}
}

func demoCourseFiles(now time.Time) []models.CourseFile {
	return []models.CourseFile{
		{
			ID:          uuid.NewString(),
			FacultyName: "Prof. Lata Deshmukh",
			Department:  "CSE",
			Subject:     "Data Structures",
			Term:        "2026-even",
			Files: []models.FileDescriptor{
				{Name: "syllabus.pdf", Size: 52430},
				{Name: "question-bank.docx", Size: 91002},
			},
			Status:      models.CourseFilePendingReview,
			SubmittedAt: now.Add(-72 * time.Hour),
		},
	}
}
