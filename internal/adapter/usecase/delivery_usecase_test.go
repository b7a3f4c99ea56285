package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"adserve/internal/core/domain"
	"adserve/internal/core/port"
	"adserve/internal/core/port/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testContent(t *testing.T, campaignID uuid.UUID, format domain.ContentFormat, audience domain.TargetContext, priceCents, quota int64) domain.Content {
	t.Helper()
	c, err := domain.NewContent(campaignID, format, audience, priceCents, quota, domain.Payload{
		Kind: domain.PayloadText, Text: "creative",
	})
	if err != nil {
		t.Fatalf("testContent: %v", err)
	}
	return c
}

// TestRequestContentPrefersSpecificCandidate covers the leaderboard
// scenario: of two active contents at equal price, the one whose audience
// intersects both restricted categories wins every auction; the one whose
// gender set is disjoint from the request is not a candidate at all.
func TestRequestContentPrefersSpecificCandidate(t *testing.T) {
	repo := mocks.NewMockContentRepository(t)
	campaignID := uuid.New()

	x := testContent(t, campaignID, domain.FormatLeaderboard, domain.TargetContext{
		Ages:            []domain.AgeGroup{domain.Age20s},
		Genders:         []domain.Gender{domain.GenderMale},
		MaritalStatuses: []domain.MaritalStatus{domain.MaritalSingle},
		Purposes:        []domain.PurposeOfUse{domain.PurposePrivate},
	}, 4, 10)
	y := testContent(t, campaignID, domain.FormatLeaderboard, domain.TargetContext{
		Ages:            []domain.AgeGroup{domain.Age20s},
		Genders:         []domain.Gender{domain.GenderFemale},
		MaritalStatuses: []domain.MaritalStatus{domain.MaritalSingle},
		Purposes:        []domain.PurposeOfUse{domain.PurposePrivate},
	}, 4, 10)

	repo.EXPECT().
		FindActiveContent(mock.Anything, domain.FormatLeaderboard).
		Return([]domain.Content{x, y}, nil)
	repo.EXPECT().LoadContent(mock.Anything, y.ID).Return(&y, nil)
	repo.EXPECT().DecrementQuota(mock.Anything, y.ID).Return(int64(5), nil)
	repo.EXPECT().
		AppendRequestLog(mock.Anything, mock.AnythingOfType("*domain.RequestLog")).
		Return(nil)

	svc := NewDeliveryUseCase(repo, discardLogger(), Options{})

	req := port.DeliveryRequest{
		Source: "s1",
		Format: domain.FormatLeaderboard,
		Context: domain.TargetContext{
			Ages:    []domain.AgeGroup{domain.Age20s},
			Genders: []domain.Gender{domain.GenderFemale},
		},
	}
	for i := 0; i < 50; i++ {
		resp, err := svc.RequestContent(context.Background(), req)
		if err != nil {
			t.Fatalf("RequestContent error: %v", err)
		}
		if resp.ContentID != y.ID {
			t.Fatalf("expected content %s, got %s", y.ID, resp.ContentID)
		}
	}
}

// TestRequestContentNoActiveContent: a format with no active content
// anywhere yields NotFound deterministically.
func TestRequestContentNoActiveContent(t *testing.T) {
	repo := mocks.NewMockContentRepository(t)
	repo.EXPECT().
		FindActiveContent(mock.Anything, domain.FormatSkyscraper).
		Return(nil, nil)

	svc := NewDeliveryUseCase(repo, discardLogger(), Options{})

	_, err := svc.RequestContent(context.Background(), port.DeliveryRequest{
		Source: "s1",
		Format: domain.FormatSkyscraper,
	})
	if !errors.Is(err, port.ErrNoActiveContent) {
		t.Fatalf("expected ErrNoActiveContent, got %v", err)
	}
}

// TestUnrestrictedMatchesUntargeted: a request whose context places no
// restriction must produce the same distribution of outcomes as the
// untargeted entry point.
func TestUnrestrictedMatchesUntargeted(t *testing.T) {
	repo := mocks.NewMockContentRepository(t)
	campaignID := uuid.New()
	audience := domain.TargetContext{
		Ages:            []domain.AgeGroup{domain.Age30s},
		Genders:         []domain.Gender{domain.GenderFemale},
		MaritalStatuses: []domain.MaritalStatus{domain.MaritalMarried},
		Purposes:        []domain.PurposeOfUse{domain.PurposeBusiness},
	}
	a := testContent(t, campaignID, domain.FormatBanner, audience, 10, 1000)
	b := testContent(t, campaignID, domain.FormatBanner, audience, 20, 1000)

	var (
		mu     sync.Mutex
		counts = map[uuid.UUID]int{}
	)
	repo.EXPECT().
		FindActiveContent(mock.Anything, domain.FormatBanner).
		Return([]domain.Content{a, b}, nil)
	repo.EXPECT().
		LoadContent(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id uuid.UUID) (*domain.Content, error) {
			if id == a.ID {
				return &a, nil
			}
			return &b, nil
		})
	repo.EXPECT().
		DecrementQuota(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id uuid.UUID) (int64, error) {
			mu.Lock()
			defer mu.Unlock()
			counts[id]++
			return 99, nil
		})
	repo.EXPECT().
		AppendRequestLog(mock.Anything, mock.AnythingOfType("*domain.RequestLog")).
		Return(nil)

	svc := NewDeliveryUseCase(repo, discardLogger(), Options{})

	const draws = 4000
	share := func() float64 {
		mu.Lock()
		defer mu.Unlock()
		total := counts[a.ID] + counts[b.ID]
		s := float64(counts[a.ID]) / float64(total)
		counts[a.ID], counts[b.ID] = 0, 0
		return s
	}

	for i := 0; i < draws; i++ {
		if _, err := svc.RequestContent(context.Background(), port.DeliveryRequest{
			Source: "s1", Format: domain.FormatBanner,
		}); err != nil {
			t.Fatalf("RequestContent error: %v", err)
		}
	}
	targeted := share()

	for i := 0; i < draws; i++ {
		if _, err := svc.RequestUntargetedContent(context.Background(), "s1", domain.FormatBanner); err != nil {
			t.Fatalf("RequestUntargetedContent error: %v", err)
		}
	}
	untargeted := share()

	for name, s := range map[string]float64{"targeted": targeted, "untargeted": untargeted} {
		if s < 0.45 || s > 0.55 {
			t.Errorf("%s: content A received %.4f of deliveries, want ~0.50", name, s)
		}
	}
}

// TestQuotaRaceRetriesFallback: a delivery losing the quota race is retried
// against a fresh view of the active content; with nothing left it resolves
// to NotFound, never to an exposed race error.
func TestQuotaRaceRetriesFallback(t *testing.T) {
	repo := mocks.NewMockContentRepository(t)
	campaignID := uuid.New()
	c := testContent(t, campaignID, domain.FormatRectangle, domain.TargetContext{
		Ages:            []domain.AgeGroup{domain.Age40s},
		Genders:         []domain.Gender{domain.GenderMale},
		MaritalStatuses: []domain.MaritalStatus{domain.MaritalMarried},
		Purposes:        []domain.PurposeOfUse{domain.PurposePrivate},
	}, 2, 1)

	repo.EXPECT().
		FindActiveContent(mock.Anything, domain.FormatRectangle).
		Return([]domain.Content{c}, nil).Once()
	repo.EXPECT().LoadContent(mock.Anything, c.ID).Return(&c, nil).Once()
	repo.EXPECT().
		DecrementQuota(mock.Anything, c.ID).
		Return(int64(0), port.ErrQuotaRaced).Once()
	repo.EXPECT().
		FindActiveContent(mock.Anything, domain.FormatRectangle).
		Return(nil, nil).Once()

	svc := NewDeliveryUseCase(repo, discardLogger(), Options{})

	_, err := svc.RequestUntargetedContent(context.Background(), "s1", domain.FormatRectangle)
	if !errors.Is(err, port.ErrNoActiveContent) {
		t.Fatalf("expected ErrNoActiveContent after raced retry, got %v", err)
	}
	if errors.Is(err, port.ErrQuotaRaced) {
		t.Fatalf("race error must not surface to the caller")
	}
}

// TestConcurrentDeliveriesNeverUnderflow drives many concurrent requests at
// a single content with quota 5 against an in-memory repository emulation.
// Exactly five deliveries succeed, the quota never goes below zero, the
// request log holds one entry per delivery and the campaign ends exactly
// once.
func TestConcurrentDeliveriesNeverUnderflow(t *testing.T) {
	repo := mocks.NewMockContentRepository(t)
	campaignID := uuid.New()
	c := testContent(t, campaignID, domain.FormatBanner, domain.TargetContext{
		Ages:            []domain.AgeGroup{domain.Age20s},
		Genders:         []domain.Gender{domain.GenderFemale},
		MaritalStatuses: []domain.MaritalStatus{domain.MaritalSingle},
		Purposes:        []domain.PurposeOfUse{domain.PurposePrivate},
	}, 3, 5)

	var (
		mu          sync.Mutex
		quota       = int64(5)
		status      = domain.CampaignRunning
		logCount    = 0
		transitions = 0
	)
	snapshot := func() domain.Content {
		cc := c
		cc.Quota = quota
		return cc
	}

	repo.EXPECT().
		FindActiveContent(mock.Anything, domain.FormatBanner).
		RunAndReturn(func(context.Context, domain.ContentFormat) ([]domain.Content, error) {
			mu.Lock()
			defer mu.Unlock()
			if quota <= 0 || status != domain.CampaignRunning {
				return nil, nil
			}
			return []domain.Content{snapshot()}, nil
		})
	repo.EXPECT().
		LoadContent(mock.Anything, c.ID).
		RunAndReturn(func(context.Context, uuid.UUID) (*domain.Content, error) {
			mu.Lock()
			defer mu.Unlock()
			cc := snapshot()
			return &cc, nil
		})
	repo.EXPECT().
		DecrementQuota(mock.Anything, c.ID).
		RunAndReturn(func(context.Context, uuid.UUID) (int64, error) {
			mu.Lock()
			defer mu.Unlock()
			if quota <= 0 {
				return 0, port.ErrQuotaRaced
			}
			quota--
			return quota, nil
		})
	repo.EXPECT().
		AppendRequestLog(mock.Anything, mock.AnythingOfType("*domain.RequestLog")).
		RunAndReturn(func(context.Context, *domain.RequestLog) error {
			mu.Lock()
			defer mu.Unlock()
			logCount++
			return nil
		})
	repo.EXPECT().
		FindCampaignContent(mock.Anything, campaignID).
		RunAndReturn(func(context.Context, uuid.UUID) ([]domain.Content, error) {
			mu.Lock()
			defer mu.Unlock()
			return []domain.Content{snapshot()}, nil
		})
	repo.EXPECT().
		TransitionCampaign(mock.Anything, campaignID, domain.CampaignRunning, domain.CampaignEnded).
		RunAndReturn(func(context.Context, uuid.UUID, domain.CampaignStatus, domain.CampaignStatus) (bool, error) {
			mu.Lock()
			defer mu.Unlock()
			if status != domain.CampaignRunning {
				return false, nil
			}
			status = domain.CampaignEnded
			transitions++
			return true, nil
		})

	svc := NewDeliveryUseCase(repo, discardLogger(), Options{})

	const workers = 20
	results := make(chan error, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.RequestUntargetedContent(context.Background(), "s1", domain.FormatBanner)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	successes := 0
	for err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, port.ErrNoActiveContent):
		default:
			t.Fatalf("unexpected delivery error: %v", err)
		}
	}

	if successes != 5 {
		t.Fatalf("expected exactly 5 successful deliveries, got %d", successes)
	}
	if quota != 0 {
		t.Fatalf("quota must end at 0, got %d", quota)
	}
	if logCount != 5 {
		t.Fatalf("expected 5 request log entries, got %d", logCount)
	}
	if transitions != 1 {
		t.Fatalf("campaign must end exactly once, got %d transitions", transitions)
	}
}

// TestCampaignEndsOnlyWhenAllContentExhausted: with two contents of quota 1
// the campaign ends after the second exhaustion, not the first, and the
// transition fires exactly once.
func TestCampaignEndsOnlyWhenAllContentExhausted(t *testing.T) {
	repo := mocks.NewMockContentRepository(t)
	campaignID := uuid.New()
	audience := domain.TargetContext{
		Ages:            []domain.AgeGroup{domain.Age20s},
		Genders:         []domain.Gender{domain.GenderOther},
		MaritalStatuses: []domain.MaritalStatus{domain.MaritalSingle},
		Purposes:        []domain.PurposeOfUse{domain.PurposeEducation},
	}
	c1 := testContent(t, campaignID, domain.FormatSkyscraper, audience, 5, 1)
	c2 := testContent(t, campaignID, domain.FormatSkyscraper, audience, 5, 1)

	var (
		mu          sync.Mutex
		quotas      = map[uuid.UUID]int64{c1.ID: 1, c2.ID: 1}
		status      = domain.CampaignRunning
		transitions = 0
	)
	snapshot := func(c domain.Content) domain.Content {
		c.Quota = quotas[c.ID]
		return c
	}

	repo.EXPECT().
		FindActiveContent(mock.Anything, domain.FormatSkyscraper).
		RunAndReturn(func(context.Context, domain.ContentFormat) ([]domain.Content, error) {
			mu.Lock()
			defer mu.Unlock()
			var active []domain.Content
			for _, c := range []domain.Content{c1, c2} {
				if quotas[c.ID] > 0 && status == domain.CampaignRunning {
					active = append(active, snapshot(c))
				}
			}
			return active, nil
		})
	repo.EXPECT().
		LoadContent(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id uuid.UUID) (*domain.Content, error) {
			mu.Lock()
			defer mu.Unlock()
			for _, c := range []domain.Content{c1, c2} {
				if c.ID == id {
					cc := snapshot(c)
					return &cc, nil
				}
			}
			return nil, port.ErrContentNotFound
		})
	repo.EXPECT().
		DecrementQuota(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id uuid.UUID) (int64, error) {
			mu.Lock()
			defer mu.Unlock()
			if quotas[id] <= 0 {
				return 0, port.ErrQuotaRaced
			}
			quotas[id]--
			return quotas[id], nil
		})
	repo.EXPECT().
		AppendRequestLog(mock.Anything, mock.AnythingOfType("*domain.RequestLog")).
		Return(nil)
	repo.EXPECT().
		FindCampaignContent(mock.Anything, campaignID).
		RunAndReturn(func(context.Context, uuid.UUID) ([]domain.Content, error) {
			mu.Lock()
			defer mu.Unlock()
			return []domain.Content{snapshot(c1), snapshot(c2)}, nil
		})
	repo.EXPECT().
		TransitionCampaign(mock.Anything, campaignID, domain.CampaignRunning, domain.CampaignEnded).
		RunAndReturn(func(context.Context, uuid.UUID, domain.CampaignStatus, domain.CampaignStatus) (bool, error) {
			mu.Lock()
			defer mu.Unlock()
			if status != domain.CampaignRunning {
				return false, nil
			}
			status = domain.CampaignEnded
			transitions++
			return true, nil
		})

	svc := NewDeliveryUseCase(repo, discardLogger(), Options{})

	for i := 0; i < 2; i++ {
		if _, err := svc.RequestUntargetedContent(context.Background(), "s1", domain.FormatSkyscraper); err != nil {
			t.Fatalf("delivery %d error: %v", i+1, err)
		}
	}
	if transitions != 1 {
		t.Fatalf("campaign must end exactly once after both quotas hit 0, got %d", transitions)
	}

	_, err := svc.RequestUntargetedContent(context.Background(), "s1", domain.FormatSkyscraper)
	if !errors.Is(err, port.ErrNoActiveContent) {
		t.Fatalf("expected ErrNoActiveContent once everything is exhausted, got %v", err)
	}
	if transitions != 1 {
		t.Fatalf("no further transitions may fire, got %d", transitions)
	}
}

func TestCancelCampaign(t *testing.T) {
	t.Run("running campaign is cancelled", func(t *testing.T) {
		repo := mocks.NewMockContentRepository(t)
		id := uuid.New()
		repo.EXPECT().
			TransitionCampaign(mock.Anything, id, domain.CampaignRunning, domain.CampaignCancelled).
			Return(true, nil)

		svc := NewDeliveryUseCase(repo, discardLogger(), Options{})
		if err := svc.CancelCampaign(context.Background(), id); err != nil {
			t.Fatalf("CancelCampaign error: %v", err)
		}
	})

	t.Run("terminal campaign reports not found", func(t *testing.T) {
		repo := mocks.NewMockContentRepository(t)
		id := uuid.New()
		repo.EXPECT().
			TransitionCampaign(mock.Anything, id, domain.CampaignRunning, domain.CampaignCancelled).
			Return(false, nil)

		svc := NewDeliveryUseCase(repo, discardLogger(), Options{})
		if err := svc.CancelCampaign(context.Background(), id); !errors.Is(err, port.ErrCampaignNotFound) {
			t.Fatalf("expected ErrCampaignNotFound, got %v", err)
		}
	})
}

func TestCreateContent(t *testing.T) {
	audience := domain.TargetContext{
		Ages:            []domain.AgeGroup{domain.Age30s},
		Genders:         []domain.Gender{domain.GenderMale},
		MaritalStatuses: []domain.MaritalStatus{domain.MaritalDivorced},
		Purposes:        []domain.PurposeOfUse{domain.PurposeBusiness},
	}

	t.Run("persists valid content", func(t *testing.T) {
		repo := mocks.NewMockContentRepository(t)
		campaign := domain.NewCampaign("c")
		repo.EXPECT().GetCampaign(mock.Anything, campaign.ID).Return(&campaign, nil)
		repo.EXPECT().CreateContent(mock.Anything, mock.AnythingOfType("*domain.Content")).Return(nil)

		svc := NewDeliveryUseCase(repo, discardLogger(), Options{})
		c, err := svc.CreateContent(context.Background(), port.NewContentRequest{
			CampaignID: campaign.ID,
			Format:     domain.FormatBanner,
			Audience:   audience,
			PriceCents: 7,
			Quota:      50,
			Payload:    domain.Payload{Kind: domain.PayloadText, Text: "offer"},
		})
		if err != nil {
			t.Fatalf("CreateContent error: %v", err)
		}
		if c.ID == uuid.Nil {
			t.Fatalf("content id must be assigned before persistence")
		}
	})

	t.Run("rejects empty audience category", func(t *testing.T) {
		repo := mocks.NewMockContentRepository(t)
		campaign := domain.NewCampaign("c")
		repo.EXPECT().GetCampaign(mock.Anything, campaign.ID).Return(&campaign, nil)

		partial := audience
		partial.Purposes = nil

		svc := NewDeliveryUseCase(repo, discardLogger(), Options{})
		_, err := svc.CreateContent(context.Background(), port.NewContentRequest{
			CampaignID: campaign.ID,
			Format:     domain.FormatBanner,
			Audience:   partial,
			PriceCents: 7,
			Quota:      50,
			Payload:    domain.Payload{Kind: domain.PayloadText, Text: "offer"},
		})
		if !errors.Is(err, domain.ErrEmptyAudienceCategory) {
			t.Fatalf("expected ErrEmptyAudienceCategory, got %v", err)
		}
	})

	t.Run("rejects non-running campaign", func(t *testing.T) {
		repo := mocks.NewMockContentRepository(t)
		campaign := domain.NewCampaign("c")
		campaign.Status = domain.CampaignEnded
		repo.EXPECT().GetCampaign(mock.Anything, campaign.ID).Return(&campaign, nil)

		svc := NewDeliveryUseCase(repo, discardLogger(), Options{})
		_, err := svc.CreateContent(context.Background(), port.NewContentRequest{
			CampaignID: campaign.ID,
			Format:     domain.FormatBanner,
			Audience:   audience,
			PriceCents: 7,
			Quota:      50,
			Payload:    domain.Payload{Kind: domain.PayloadText, Text: "offer"},
		})
		if err == nil {
			t.Fatalf("expected error for non-running campaign")
		}
	})
}
