package insights

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-insights/internal/usecase/analysis"
	"github.com/johnquangdev/meeting-insights/internal/usecase/scoring"
	"github.com/johnquangdev/meeting-insights/internal/usecase/template"
)

type fakeMeetingRepo struct {
	meetings map[uuid.UUID]*entities.Meeting
}

func newFakeMeetingRepo() *fakeMeetingRepo {
	return &fakeMeetingRepo{meetings: make(map[uuid.UUID]*entities.Meeting)}
}

func (f *fakeMeetingRepo) Create(_ context.Context, m *entities.Meeting) error {
	f.meetings[m.ID] = m
	return nil
}

func (f *fakeMeetingRepo) GetByID(_ context.Context, id uuid.UUID) (*entities.Meeting, error) {
	return f.meetings[id], nil
}

func (f *fakeMeetingRepo) GetByTranscriptJobID(_ context.Context, jobID string) (*entities.Meeting, error) {
	for _, m := range f.meetings {
		if m.TranscriptJobID == jobID {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeMeetingRepo) SetTranscriptJobID(_ context.Context, id uuid.UUID, jobID string) error {
	if m := f.meetings[id]; m != nil {
		m.TranscriptJobID = jobID
	}
	return nil
}

func (f *fakeMeetingRepo) List(_ context.Context, _, _ int) ([]entities.Meeting, error) {
	out := make([]entities.Meeting, 0, len(f.meetings))
	for _, m := range f.meetings {
		out = append(out, *m)
	}
	return out, nil
}

func (f *fakeMeetingRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entities.MeetingStatus) error {
	if m := f.meetings[id]; m != nil {
		m.Status = status
	}
	return nil
}

func (f *fakeMeetingRepo) UpdateAnalysisMetadata(_ context.Context, id uuid.UUID, meetingType string, participantsCount int) error {
	if m := f.meetings[id]; m != nil {
		m.MeetingType = meetingType
		m.ParticipantsCount = participantsCount
	}
	return nil
}

func (f *fakeMeetingRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.meetings, id)
	return nil
}

type fakeTranscriptRepo struct {
	byMeeting map[uuid.UUID]*entities.Transcript
}

func newFakeTranscriptRepo() *fakeTranscriptRepo {
	return &fakeTranscriptRepo{byMeeting: make(map[uuid.UUID]*entities.Transcript)}
}

func (f *fakeTranscriptRepo) Create(_ context.Context, t *entities.Transcript) error {
	f.byMeeting[t.MeetingID] = t
	return nil
}

func (f *fakeTranscriptRepo) GetByMeetingID(_ context.Context, meetingID uuid.UUID) (*entities.Transcript, error) {
	return f.byMeeting[meetingID], nil
}

type fakeNoteRepo struct {
	byMeeting map[uuid.UUID]*entities.Note
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{byMeeting: make(map[uuid.UUID]*entities.Note)}
}

func (f *fakeNoteRepo) Upsert(_ context.Context, note *entities.Note) error {
	f.byMeeting[note.MeetingID] = note
	return nil
}

func (f *fakeNoteRepo) GetByMeetingID(_ context.Context, meetingID uuid.UUID) (*entities.Note, error) {
	return f.byMeeting[meetingID], nil
}

type fakeActionItemRepo struct {
	items  []entities.ActionItemRecord
	nextID int64
}

func (f *fakeActionItemRepo) CreateBatch(_ context.Context, items []entities.ActionItemRecord) error {
	for _, item := range items {
		f.nextID++
		item.ID = f.nextID
		f.items = append(f.items, item)
	}
	return nil
}

func (f *fakeActionItemRepo) ListByMeetingID(_ context.Context, meetingID uuid.UUID) ([]entities.ActionItemRecord, error) {
	out := make([]entities.ActionItemRecord, 0)
	for _, item := range f.items {
		if item.MeetingID == meetingID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeActionItemRepo) UpdateStatus(_ context.Context, id int64, status string) error {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Status = status
		}
	}
	return nil
}

func (f *fakeActionItemRepo) DeleteByMeetingID(_ context.Context, meetingID uuid.UUID) error {
	kept := f.items[:0]
	for _, item := range f.items {
		if item.MeetingID != meetingID {
			kept = append(kept, item)
		}
	}
	f.items = kept
	return nil
}

type fakeScoreRepo struct {
	byMeeting map[uuid.UUID]*entities.MeetingScore
}

func newFakeScoreRepo() *fakeScoreRepo {
	return &fakeScoreRepo{byMeeting: make(map[uuid.UUID]*entities.MeetingScore)}
}

func (f *fakeScoreRepo) Upsert(_ context.Context, score *entities.MeetingScore) error {
	f.byMeeting[score.MeetingID] = score
	return nil
}

func (f *fakeScoreRepo) GetByMeetingID(_ context.Context, meetingID uuid.UUID) (*entities.MeetingScore, error) {
	return f.byMeeting[meetingID], nil
}

type fakeJobRepo struct {
	jobs map[uuid.UUID]*entities.AnalysisJob
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[uuid.UUID]*entities.AnalysisJob)}
}

func (f *fakeJobRepo) Create(_ context.Context, job *entities.AnalysisJob) error {
	f.jobs[job.ID] = job
	return nil
}

func (f *fakeJobRepo) GetByID(_ context.Context, id uuid.UUID) (*entities.AnalysisJob, error) {
	return f.jobs[id], nil
}

func (f *fakeJobRepo) ListByStatus(_ context.Context, status entities.AnalysisJobStatus, limit int) ([]entities.AnalysisJob, error) {
	out := make([]entities.AnalysisJob, 0)
	for _, job := range f.jobs {
		if job.Status == status && len(out) < limit {
			out = append(out, *job)
		}
	}
	return out, nil
}

func (f *fakeJobRepo) Claim(_ context.Context, id uuid.UUID, from, to entities.AnalysisJobStatus) (bool, error) {
	job := f.jobs[id]
	if job == nil || job.Status != from {
		return false, nil
	}
	job.Status = to
	return true, nil
}

func (f *fakeJobRepo) MarkCompleted(_ context.Context, id uuid.UUID) error {
	if job := f.jobs[id]; job != nil {
		job.Status = entities.AnalysisJobStatusCompleted
	}
	return nil
}

func (f *fakeJobRepo) MarkFailed(_ context.Context, id uuid.UUID, errMsg string) error {
	if job := f.jobs[id]; job != nil {
		job.Status = entities.AnalysisJobStatusFailed
		job.LastError = &errMsg
	}
	return nil
}

func (f *fakeJobRepo) ResetStale(_ context.Context, _ int) (int64, error) {
	return 0, nil
}

type serviceFixture struct {
	svc            Service
	meetingRepo    *fakeMeetingRepo
	transcriptRepo *fakeTranscriptRepo
	noteRepo       *fakeNoteRepo
	actionItemRepo *fakeActionItemRepo
	scoreRepo      *fakeScoreRepo
	jobRepo        *fakeJobRepo
}

func newServiceFixture() *serviceFixture {
	f := &serviceFixture{
		meetingRepo:    newFakeMeetingRepo(),
		transcriptRepo: newFakeTranscriptRepo(),
		noteRepo:       newFakeNoteRepo(),
		actionItemRepo: &fakeActionItemRepo{},
		scoreRepo:      newFakeScoreRepo(),
		jobRepo:        newFakeJobRepo(),
	}
	f.svc = NewService(
		f.meetingRepo,
		f.transcriptRepo,
		f.noteRepo,
		f.actionItemRepo,
		f.scoreRepo,
		f.jobRepo,
		analysis.NewEngine(nil, nil, nil),
		template.NewManager(nil),
		scoring.NewScorer(nil),
		cache.NewMemoryStore(),
		nil,
		nil,
	)
	return f
}

func TestAnalyzeMeetingPersistsThroughRepositories(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	meeting := entities.NewMeeting("Roadmap sync")
	meeting.DurationSeconds = 1800
	require.NoError(t, f.meetingRepo.Create(ctx, meeting))

	transcript := entities.NewTranscript(meeting.ID)
	transcript.Text = "John Smith will update the deployment script by Friday. " +
		"We decided to postpone the launch until the audit is finished."
	require.NoError(t, f.transcriptRepo.Create(ctx, transcript))

	result, err := f.svc.AnalyzeMeeting(ctx, meeting.ID, "generic")
	require.NoError(t, err)
	require.NotNil(t, result)

	note, err := f.noteRepo.GetByMeetingID(ctx, meeting.ID)
	require.NoError(t, err)
	require.NotNil(t, note)
	assert.Equal(t, result.Summary, note.Summary)
	assert.Equal(t, result.Markdown, note.Markdown)

	items, err := f.actionItemRepo.ListByMeetingID(ctx, meeting.ID)
	require.NoError(t, err)
	require.NotEmpty(t, items)
	for _, item := range items {
		assert.Equal(t, entities.ActionItemStatusPending, item.Status)
	}

	score, err := f.scoreRepo.GetByMeetingID(ctx, meeting.ID)
	require.NoError(t, err)
	require.NotNil(t, score)
	assert.NotEmpty(t, score.Grade)

	stored, err := f.meetingRepo.GetByID(ctx, meeting.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.MeetingStatusCompleted, stored.Status)

	md, err := f.svc.GetMarkdown(ctx, meeting.ID)
	require.NoError(t, err)
	assert.Contains(t, md, "# Meeting Summary")
}

func TestAnalyzeMeetingUnknownMeeting(t *testing.T) {
	f := newServiceFixture()
	_, err := f.svc.AnalyzeMeeting(context.Background(), uuid.New(), "")
	assert.ErrorIs(t, err, entities.ErrMeetingNotFound)
}

func TestAnalyzeMeetingMissingTranscript(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	meeting := entities.NewMeeting("No transcript yet")
	require.NoError(t, f.meetingRepo.Create(ctx, meeting))

	_, err := f.svc.AnalyzeMeeting(ctx, meeting.ID, "")
	assert.ErrorIs(t, err, entities.ErrTranscriptNotFound)
}

func TestEnqueueAnalysisCreatesPendingJob(t *testing.T) {
	f := newServiceFixture()
	ctx := context.Background()

	meeting := entities.NewMeeting("Weekly standup")
	require.NoError(t, f.meetingRepo.Create(ctx, meeting))
	transcript := entities.NewTranscript(meeting.ID)
	transcript.Text = "Yesterday I finished the report. Today I will prepare the demo."
	require.NoError(t, f.transcriptRepo.Create(ctx, transcript))

	job, err := f.svc.EnqueueAnalysis(ctx, meeting.ID, "standup")
	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, entities.AnalysisJobStatusPending, job.Status)
	assert.Equal(t, "standup", job.TemplateName)

	stored, err := f.jobRepo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, meeting.ID, stored.MeetingID)
}
