// AngelaMos | 2026
// service_test.go

package job

import (
	"context"
	"testing"
	"time"
)

type fakeRepo struct {
	Repository

	scheduled     []Job
	scheduledFrom time.Time
	scheduledTo   time.Time

	counts   map[string]int
	revenues int64

	countCalls [][2]time.Time

	created map[string]*Job
}

func (f *fakeRepo) Create(_ context.Context, j *Job) error {
	if f.created == nil {
		f.created = map[string]*Job{}
	}
	copied := *j
	f.created[j.ID] = &copied
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, _, id string) (*Job, error) {
	return f.created[id], nil
}

func (f *fakeRepo) ListScheduledBetween(
	_ context.Context,
	start, end time.Time,
) ([]Job, error) {
	f.scheduledFrom = start
	f.scheduledTo = end
	return f.scheduled, nil
}

func (f *fakeRepo) CountScheduledBetween(
	_ context.Context,
	_ string,
	start, end time.Time,
) (int, error) {
	f.countCalls = append(f.countCalls, [2]time.Time{start, end})
	return f.counts[start.Format(time.RFC3339)], nil
}

func (f *fakeRepo) SumCompletedRevenueBetween(
	_ context.Context,
	_ string,
	_, _ time.Time,
) (int64, error) {
	return f.revenues, nil
}

func TestTodayWindow(t *testing.T) {
	loc := time.FixedZone("test", -5*3600)
	now := time.Date(2026, 8, 29, 14, 30, 0, 0, loc)

	start, end := TodayWindow(now)

	if !start.Equal(time.Date(2026, 8, 29, 0, 0, 0, 0, loc)) {
		t.Fatalf("start = %v", start)
	}
	if !end.Equal(time.Date(2026, 8, 30, 0, 0, 0, 0, loc)) {
		t.Fatalf("end = %v", end)
	}
	if start.Location() != loc {
		t.Fatal("window should stay in the server's zone")
	}
}

func TestJobsTodayQueriesLocalDay(t *testing.T) {
	repo := &fakeRepo{scheduled: []Job{{ID: "j1"}}}
	svc := NewService(repo)

	fixed := time.Date(2026, 8, 29, 9, 0, 0, 0, time.Local)
	svc.now = func() time.Time { return fixed }

	jobs, err := svc.JobsToday(context.Background())
	if err != nil {
		t.Fatalf("JobsToday: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("jobs = %d, want 1", len(jobs))
	}

	wantStart, wantEnd := TodayWindow(fixed)
	if !repo.scheduledFrom.Equal(wantStart) || !repo.scheduledTo.Equal(wantEnd) {
		t.Fatalf("queried [%v, %v), want [%v, %v)",
			repo.scheduledFrom, repo.scheduledTo, wantStart, wantEnd)
	}
}

func TestStatsFormatsRevenue(t *testing.T) {
	fixed := time.Date(2026, 8, 29, 9, 0, 0, 0, time.Local)
	dayStart, _ := TodayWindow(fixed)

	repo := &fakeRepo{
		counts: map[string]int{
			dayStart.Format(time.RFC3339): 3,
		},
		revenues: 250,
	}
	svc := NewService(repo)
	svc.now = func() time.Time { return fixed }

	stats, err := svc.Stats(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}

	if stats.JobsToday != 3 {
		t.Fatalf("JobsToday = %d, want 3", stats.JobsToday)
	}
	if stats.WeekRevenueCents != 250 {
		t.Fatalf("WeekRevenueCents = %d", stats.WeekRevenueCents)
	}
	if stats.WeekRevenue != "$2.50" {
		t.Fatalf("WeekRevenue = %q, want $2.50", stats.WeekRevenue)
	}

	if len(repo.countCalls) != 2 {
		t.Fatalf("count queries = %d, want 2", len(repo.countCalls))
	}
	upcoming := repo.countCalls[1]
	if !upcoming[1].Equal(dayStart.AddDate(0, 0, 7)) {
		t.Fatalf("upcoming window end = %v", upcoming[1])
	}
}

func TestCreateDefaultsToScheduled(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	j, err := svc.Create(context.Background(), "user-1", CreateJobRequest{
		ClientID:    "c1",
		ScheduledAt: time.Now(),
		PriceCents:  5000,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if j.Status != StatusScheduled {
		t.Fatalf("status = %q, want %q", j.Status, StatusScheduled)
	}
	if j.UserID != "user-1" {
		t.Fatalf("user_id = %q", j.UserID)
	}
}
