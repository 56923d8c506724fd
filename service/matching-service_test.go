package service

import (
	"fmt"
	"log"
	"math/rand/v2"
	"strings"
	"testing"

	"p2p/app_error"
	"p2p/matching"
	"p2p/repository"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"github.com/ory/dockertest/v3"
	"github.com/stretchr/testify/assert"
)

var db *gorm.DB

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		log.Fatalf("Could not construct pool: %s", err)
	}

	// uses pool to try to connect to Docker
	err = pool.Client.Ping()
	if err != nil {
		log.Fatalf("Could not connect to Docker: %s", err)
	}

	// pulls an image, creates a container based on it and runs it
	resource, err := pool.Run("postgres", "17.2-alpine", []string{"POSTGRES_USER=postgres", "POSTGRES_PASSWORD=postgres", "DATABASE_NAME=postgres"})
	if err != nil {
		log.Fatalf("Could not start resource: %s", err)
	}
	resource.Expire(600) // Tell docker to hard kill the container in 10 minutes
	sqlInfo := fmt.Sprintf(
		"host=localhost port=%s user=postgres password=postgres dbname=postgres sslmode=disable search_path=p2p",
		resource.GetPort("5432/tcp"))

	// exponential backoff-retry, because the application in the container might not be ready to accept connections yet
	if err := pool.Retry(func() error {
		var err error
		db, err = gorm.Open(postgres.Open(sqlInfo), &gorm.Config{
			NamingStrategy: schema.NamingStrategy{
				TablePrefix:   "p2p.",
				SingularTable: false,
			},
			Logger: logger.Default.LogMode(logger.Silent),
		})

		if err != nil {
			return err
		}
		db.Exec(`CREATE SCHEMA IF NOT EXISTS p2p`)
		return db.AutoMigrate(
			&repository.Participant{},
			&repository.Meeting{},
			&repository.Rating{},
		)

	}); err != nil {
		log.Fatalf("Could not connect to database: %s", err)
	}

	defer func() {
		if err := pool.Purge(resource); err != nil {
			log.Fatalf("Could not purge resource: %s", err)
		}
	}()
	m.Run()
}

func tearDown() {
	db.Exec("DELETE FROM p2p.ratings")
	db.Exec("DELETE FROM p2p.meetings")
	db.Exec("DELETE FROM p2p.participants")
}

func seedParticipant(t *testing.T, name string, categories ...repository.Category) *repository.Participant {
	t.Helper()
	tags := make([]string, len(categories))
	for i, category := range categories {
		tags[i] = string(category)
	}
	participant := &repository.Participant{Name: name, Categories: tags}
	_, err := repository.NewParticipantRepository(db).SaveParticipant(participant)
	assert.NoError(t, err)
	return participant
}

func newTestMatchingService() *MatchingService {
	service := NewMatchingService(db, &SyncService{})
	service.Rng = rand.New(rand.NewPCG(1, 2))
	return service
}

func TestGenerateScheduleScenario(t *testing.T) {
	defer tearDown()
	catX := repository.CategoryDSI
	catY := repository.CategoryDataIA
	seedParticipant(t, "P1", catX)
	seedParticipant(t, "P2", catX)
	seedParticipant(t, "P3", catY)
	p4 := seedParticipant(t, "P4", catX, catY)

	service := newTestMatchingService()
	summary, err := service.GenerateSchedule()
	assert.NoError(t, err)
	assert.Equal(t, 4, summary.Generated)
	assert.Equal(t, 0, summary.Dropped)

	meetings, err := repository.NewMeetingRepository(db).GetAllMeetings()
	assert.NoError(t, err)
	assert.Len(t, meetings, 4)

	roundsOfP4 := make(map[int]bool)
	for _, meeting := range meetings {
		if meeting.Includes(p4.Id) {
			assert.False(t, roundsOfP4[meeting.Round])
			roundsOfP4[meeting.Round] = true
		}
	}
	assert.Len(t, roundsOfP4, 3)

	// a second full run replaces the set instead of appending
	_, err = service.GenerateSchedule()
	assert.NoError(t, err)
	meetings, err = repository.NewMeetingRepository(db).GetAllMeetings()
	assert.NoError(t, err)
	assert.Len(t, meetings, 4)
}

func TestGenerateScheduleEmptyRoster(t *testing.T) {
	defer tearDown()
	service := newTestMatchingService()

	summary, err := service.GenerateSchedule()

	assert.NoError(t, err)
	assert.Equal(t, 0, summary.Generated)
	meetings, err := repository.NewMeetingRepository(db).GetAllMeetings()
	assert.NoError(t, err)
	assert.Empty(t, meetings)
}

func TestGenerateIncrementalScheduleUnion(t *testing.T) {
	defer tearDown()
	catX := repository.CategoryDSI
	seedParticipant(t, "P1", catX)
	seedParticipant(t, "P2", catX)
	seedParticipant(t, "P3", catX)

	service := newTestMatchingService()
	summary, err := service.GenerateSchedule()
	assert.NoError(t, err)
	assert.Equal(t, 3, summary.Generated)

	seedParticipant(t, "P4", catX)
	summary, err = service.GenerateIncrementalSchedule()
	assert.NoError(t, err)
	assert.Equal(t, 3, summary.Generated)
	assert.Equal(t, 6, summary.Total)

	meetings, err := repository.NewMeetingRepository(db).GetAllMeetings()
	assert.NoError(t, err)
	assert.Len(t, meetings, 6)

	pairs := make(map[string]bool)
	tablesPerRound := make(map[int]map[int]bool)
	for _, meeting := range meetings {
		key := matching.MeetingId(meeting.Participant1Id, meeting.Participant2Id, 0)
		assert.False(t, pairs[key], "pair %s was scheduled twice", key)
		pairs[key] = true
		if tablesPerRound[meeting.Round] == nil {
			tablesPerRound[meeting.Round] = make(map[int]bool)
		}
		assert.False(t, tablesPerRound[meeting.Round][meeting.TableNumber],
			"table %d in round %d was assigned twice", meeting.TableNumber, meeting.Round)
		tablesPerRound[meeting.Round][meeting.TableNumber] = true
	}
}

func seedMeeting(t *testing.T, participant1Id int, participant2Id int, round int) *repository.Meeting {
	t.Helper()
	meeting := &repository.Meeting{
		Id:             matching.MeetingId(participant1Id, participant2Id, round),
		Participant1Id: participant1Id,
		Participant2Id: participant2Id,
		Round:          round,
		TableNumber:    1,
		ScheduledTime:  matching.ScheduledTime(round),
		Category:       repository.CategoryDSI,
		Status:         repository.MeetingScheduled,
	}
	assert.NoError(t, repository.NewMeetingRepository(db).AddMeetings([]*repository.Meeting{meeting}))
	return meeting
}

func TestSubmitRatingRecomputesAverage(t *testing.T) {
	defer tearDown()
	catX := repository.CategoryDSI
	ratee := seedParticipant(t, "Ratee", catX)
	raters := []*repository.Participant{
		seedParticipant(t, "R1", catX),
		seedParticipant(t, "R2", catX),
		seedParticipant(t, "R3", catX),
		seedParticipant(t, "R4", catX),
	}
	ratingService := NewRatingService(db, &SyncService{})

	scores := []int{3, 5, 4}
	for i, score := range scores {
		meeting := seedMeeting(t, ratee.Id, raters[i].Id, i+1)
		_, average, err := ratingService.SubmitRating(meeting.Id, &RatingSubmission{FromId: raters[i].Id, Score: score})
		assert.NoError(t, err)
		if i == len(scores)-1 {
			assert.InDelta(t, 4.0, average, 1e-9)
		}
	}

	meeting := seedMeeting(t, ratee.Id, raters[3].Id, 4)
	_, average, err := ratingService.SubmitRating(meeting.Id, &RatingSubmission{FromId: raters[3].Id, Score: 2})
	assert.NoError(t, err)
	assert.InDelta(t, 3.5, average, 1e-9)

	stored, err := repository.NewParticipantRepository(db).GetParticipantById(ratee.Id)
	assert.NoError(t, err)
	assert.InDelta(t, 3.5, stored.AvgScore, 1e-9)
}

func TestSubmitRatingReplacesEarlierRatingFromSameRater(t *testing.T) {
	defer tearDown()
	catX := repository.CategoryDSI
	ratee := seedParticipant(t, "Ratee", catX)
	rater := seedParticipant(t, "Rater", catX)
	meeting := seedMeeting(t, ratee.Id, rater.Id, 1)
	ratingService := NewRatingService(db, &SyncService{})

	_, _, err := ratingService.SubmitRating(meeting.Id, &RatingSubmission{FromId: rater.Id, Score: 2})
	assert.NoError(t, err)
	_, average, err := ratingService.SubmitRating(meeting.Id, &RatingSubmission{FromId: rater.Id, Score: 4})
	assert.NoError(t, err)

	assert.InDelta(t, 4.0, average, 1e-9)
	ratings, err := repository.NewRatingRepository(db).GetRatingsForRatee(ratee.Id)
	assert.NoError(t, err)
	assert.Len(t, ratings, 1)
	assert.Equal(t, 4, ratings[0].Score)
}

func TestSubmitRatingRejectsOutsiders(t *testing.T) {
	defer tearDown()
	catX := repository.CategoryDSI
	p1 := seedParticipant(t, "P1", catX)
	p2 := seedParticipant(t, "P2", catX)
	outsider := seedParticipant(t, "Outsider", catX)
	meeting := seedMeeting(t, p1.Id, p2.Id, 1)
	ratingService := NewRatingService(db, &SyncService{})

	_, _, err := ratingService.SubmitRating(meeting.Id, &RatingSubmission{FromId: outsider.Id, Score: 3})

	assert.Error(t, err)
	assert.Equal(t, 400, app_error.Status(err))
}

func TestRegisterDuplicateNameKeepsExisting(t *testing.T) {
	defer tearDown()
	participantService := NewParticipantService(db, &SyncService{})
	first, created, err := participantService.Register(&repository.Participant{
		Name:       "Alice Martin",
		Company:    "DataStream",
		Categories: []string{string(repository.CategoryDSI)},
	})
	assert.NoError(t, err)
	assert.True(t, created)

	second, created, err := participantService.Register(&repository.Participant{
		Name:       "alice martin",
		Company:    "Someone Else",
		Categories: []string{string(repository.CategoryAutre)},
	})
	assert.NoError(t, err)
	assert.False(t, created)

	assert.Equal(t, first.Id, second.Id)
	assert.Equal(t, "DataStream", second.Company)
	all, err := participantService.GetAllParticipants()
	assert.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestImportRosterSkipsDuplicateNames(t *testing.T) {
	defer tearDown()
	participantService := NewParticipantService(db, &SyncService{})
	_, _, err := participantService.Register(&repository.Participant{
		Name:       "Alice Martin",
		Categories: []string{string(repository.CategoryDSI)},
	})
	assert.NoError(t, err)

	sheet := strings.Join([]string{
		"Jean Dupont,Jean,Dupont,Acme,CTO,DSI,",
		"jean dupont,Jean,Dupont,Somewhere Else,CEO,Autre,",
		"Alice Martin,Alice,Martin,DataStream,Head of Data,DSI,",
	}, "\n")

	imported, skipped, err := participantService.ImportRoster(strings.NewReader(sheet))

	assert.NoError(t, err)
	assert.Equal(t, 1, imported)
	assert.Equal(t, 2, skipped)
	all, err := participantService.GetAllParticipants()
	assert.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestMeetingLifecycleIsMonotonic(t *testing.T) {
	defer tearDown()
	catX := repository.CategoryDSI
	p1 := seedParticipant(t, "P1", catX)
	p2 := seedParticipant(t, "P2", catX)
	meeting := seedMeeting(t, p1.Id, p2.Id, 1)
	meetingService := NewMeetingService(db, &SyncService{})

	started, err := meetingService.StartMeeting(meeting.Id)
	assert.NoError(t, err)
	assert.Equal(t, repository.MeetingOngoing, started.Status)
	assert.NotNil(t, started.ActualStartTime)

	// re-entering an ongoing meeting keeps the original start time
	resumed, err := meetingService.StartMeeting(meeting.Id)
	assert.NoError(t, err)
	assert.Equal(t, started.ActualStartTime.Unix(), resumed.ActualStartTime.Unix())

	finished, err := meetingService.FinishMeeting(meeting.Id)
	assert.NoError(t, err)
	assert.Equal(t, repository.MeetingCompleted, finished.Status)

	_, err = meetingService.StartMeeting(meeting.Id)
	assert.Error(t, err)
	assert.Equal(t, 409, app_error.Status(err))
}

func TestConfirmDuo(t *testing.T) {
	defer tearDown()
	catX := repository.CategoryDSI
	p1 := seedParticipant(t, "P1", catX)
	p2 := seedParticipant(t, "P2", catX)
	p3 := seedParticipant(t, "P3", catX)
	rankingService := NewRankingService(db, &SyncService{})

	assert.NoError(t, rankingService.ConfirmDuo(p1.Id, p2.Id))

	participantRepository := repository.NewParticipantRepository(db)
	stored1, _ := participantRepository.GetParticipantById(p1.Id)
	stored2, _ := participantRepository.GetParticipantById(p2.Id)
	assert.Equal(t, p2.Id, *stored1.PartnerId)
	assert.Equal(t, p1.Id, *stored2.PartnerId)

	err := rankingService.ConfirmDuo(p1.Id, p3.Id)
	assert.Error(t, err)
	assert.Equal(t, 409, app_error.Status(err))
}
