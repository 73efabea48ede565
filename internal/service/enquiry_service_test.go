package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ssinteriors/backend/internal/model"
	"github.com/ssinteriors/backend/pkg/mailer"
)

// ---------------------------------------------------------------------------
// Mocks
// ---------------------------------------------------------------------------

type mockEnquiryRepository struct {
	saveFunc    func(ctx context.Context, enq *model.Enquiry) error
	listAllFunc func(ctx context.Context) ([]*model.Enquiry, error)
}

func (m *mockEnquiryRepository) Save(ctx context.Context, enq *model.Enquiry) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, enq)
	}
	return nil
}

func (m *mockEnquiryRepository) ListAll(ctx context.Context) ([]*model.Enquiry, error) {
	if m.listAllFunc != nil {
		return m.listAllFunc(ctx)
	}
	return nil, nil
}

type mockSender struct {
	sendFunc func(ctx context.Context, msg *mailer.Message) error
}

func (m *mockSender) Send(ctx context.Context, msg *mailer.Message) error {
	if m.sendFunc != nil {
		return m.sendFunc(ctx, msg)
	}
	return nil
}

func testConfig(mode DispatchMode) EnquiryServiceConfig {
	return EnquiryServiceConfig{
		Mode:      mode,
		FromName:  "SS Interiors",
		FromEmail: "studio@example.com",
		Inbox:     "enquiries@example.com",
	}
}

// ---------------------------------------------------------------------------
// Synchronous mode
// ---------------------------------------------------------------------------

func TestEnquiryService_Submit_Sync_SendsComposedMessage(t *testing.T) {
	var sent *mailer.Message
	sender := &mockSender{
		sendFunc: func(ctx context.Context, msg *mailer.Message) error {
			sent = msg
			return nil
		},
	}
	svc := NewEnquiryService(nil, sender, testConfig(DispatchSync))

	enq := &model.Enquiry{Name: "Ravi", Email: "ravi@example.com", Phone: "1", ProjectType: "commercial", Location: "Pune"}
	if err := svc.Submit(context.Background(), enq); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sent == nil {
		t.Fatal("expected Send to be called")
	}
	if sent.To != "enquiries@example.com" {
		t.Errorf("expected fixed business inbox recipient, got %q", sent.To)
	}
	if !strings.Contains(sent.Subject, "Ravi") {
		t.Errorf("expected subject to contain submitter name, got %q", sent.Subject)
	}
	if !strings.Contains(sent.HTML, "ravi@example.com") {
		t.Error("expected body to contain submitted email")
	}
}

func TestEnquiryService_Submit_Sync_SenderErrorSurfaced(t *testing.T) {
	sender := &mockSender{
		sendFunc: func(ctx context.Context, msg *mailer.Message) error {
			return errors.New("provider rejected")
		},
	}
	svc := NewEnquiryService(nil, sender, testConfig(DispatchSync))

	err := svc.Submit(context.Background(), &model.Enquiry{Name: "X"})
	if err == nil {
		t.Error("expected delivery failure to surface in sync mode")
	}
}

func TestEnquiryService_Submit_PersistFailure_NoDispatch(t *testing.T) {
	repo := &mockEnquiryRepository{
		saveFunc: func(ctx context.Context, enq *model.Enquiry) error {
			return errors.New("db write failed")
		},
	}
	dispatched := false
	sender := &mockSender{
		sendFunc: func(ctx context.Context, msg *mailer.Message) error {
			dispatched = true
			return nil
		},
	}
	svc := NewEnquiryService(repo, sender, testConfig(DispatchSync))

	err := svc.Submit(context.Background(), &model.Enquiry{Name: "X"})
	if err == nil {
		t.Error("expected persistence failure to fail the submission")
	}
	svc.Wait()
	if dispatched {
		t.Error("expected no dispatch attempt after persistence failure")
	}
}

func TestEnquiryService_Submit_PersistsBeforeDispatch(t *testing.T) {
	var order []string
	repo := &mockEnquiryRepository{
		saveFunc: func(ctx context.Context, enq *model.Enquiry) error {
			order = append(order, "save")
			enq.ID = "e-1"
			return nil
		},
	}
	sender := &mockSender{
		sendFunc: func(ctx context.Context, msg *mailer.Message) error {
			order = append(order, "send")
			return nil
		},
	}
	svc := NewEnquiryService(repo, sender, testConfig(DispatchSync))

	if err := svc.Submit(context.Background(), &model.Enquiry{Name: "X"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(order) != 2 || order[0] != "save" || order[1] != "send" {
		t.Errorf("expected save before send, got %v", order)
	}
}

// ---------------------------------------------------------------------------
// Background mode
// ---------------------------------------------------------------------------

func TestEnquiryService_Submit_Background_ReturnsBeforeSendSettles(t *testing.T) {
	release := make(chan struct{})
	done := make(chan struct{})
	sender := &mockSender{
		sendFunc: func(ctx context.Context, msg *mailer.Message) error {
			<-release
			close(done)
			return nil
		},
	}
	svc := NewEnquiryService(nil, sender, testConfig(DispatchBackground))

	if err := svc.Submit(context.Background(), &model.Enquiry{Name: "X"}); err != nil {
		t.Fatalf("expected immediate acknowledgment, got error: %v", err)
	}

	select {
	case <-done:
		t.Fatal("send settled before Submit returned was observed")
	default:
	}

	close(release)
	svc.Wait()

	select {
	case <-done:
	default:
		t.Error("expected dispatch to run to completion after Wait")
	}
}

func TestEnquiryService_Submit_Background_SendFailureNotSurfaced(t *testing.T) {
	sender := &mockSender{
		sendFunc: func(ctx context.Context, msg *mailer.Message) error {
			return errors.New("provider down")
		},
	}
	svc := NewEnquiryService(nil, sender, testConfig(DispatchBackground))

	if err := svc.Submit(context.Background(), &model.Enquiry{Name: "X"}); err != nil {
		t.Errorf("expected nil in fire-and-forget mode, got %v", err)
	}
	svc.Wait()
}

// TestEnquiryService_Submit_Background_SurvivesRequestCancel: ending the
// request must not cancel an in-flight dispatch.
func TestEnquiryService_Submit_Background_SurvivesRequestCancel(t *testing.T) {
	sawCancel := make(chan bool, 1)
	started := make(chan struct{})
	sender := &mockSender{
		sendFunc: func(ctx context.Context, msg *mailer.Message) error {
			close(started)
			time.Sleep(10 * time.Millisecond)
			sawCancel <- ctx.Err() != nil
			return nil
		},
	}
	svc := NewEnquiryService(nil, sender, testConfig(DispatchBackground))

	ctx, cancel := context.WithCancel(context.Background())
	if err := svc.Submit(ctx, &model.Enquiry{Name: "X"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	<-started
	cancel()
	svc.Wait()

	if <-sawCancel {
		t.Error("expected dispatch context to survive request cancellation")
	}
}

func TestEnquiryService_Submit_Background_PersistFailureStillSurfaced(t *testing.T) {
	repo := &mockEnquiryRepository{
		saveFunc: func(ctx context.Context, enq *model.Enquiry) error {
			return errors.New("db down")
		},
	}
	svc := NewEnquiryService(repo, &mockSender{}, testConfig(DispatchBackground))

	if err := svc.Submit(context.Background(), &model.Enquiry{Name: "X"}); err == nil {
		t.Error("expected persistence failure to surface even in background mode")
	}
}

func TestNewEnquiryService_DefaultsToBackground(t *testing.T) {
	release := make(chan struct{})
	sender := &mockSender{
		sendFunc: func(ctx context.Context, msg *mailer.Message) error {
			<-release
			return nil
		},
	}
	// Unrecognized mode strings normalize to background dispatch.
	svc := NewEnquiryService(nil, sender, testConfig(DispatchMode("bogus")))

	if err := svc.Submit(context.Background(), &model.Enquiry{Name: "X"}); err != nil {
		t.Fatalf("expected background submit to return immediately, got %v", err)
	}
	close(release)
	svc.Wait()
}

// ---------------------------------------------------------------------------
// List
// ---------------------------------------------------------------------------

func TestEnquiryService_List_ReturnsRecords(t *testing.T) {
	now := time.Now()
	want := []*model.Enquiry{
		{ID: "2", Name: "B", CreatedAt: now},
		{ID: "1", Name: "A", CreatedAt: now.Add(-time.Hour)},
	}
	repo := &mockEnquiryRepository{
		listAllFunc: func(ctx context.Context) ([]*model.Enquiry, error) {
			return want, nil
		},
	}
	svc := NewEnquiryService(repo, &mockSender{}, testConfig(DispatchSync))

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "2" {
		t.Errorf("expected records in repository order, got %v", got)
	}
}

func TestEnquiryService_List_NoStore(t *testing.T) {
	svc := NewEnquiryService(nil, &mockSender{}, testConfig(DispatchSync))
	if _, err := svc.List(context.Background()); !errors.Is(err, ErrNoStore) {
		t.Errorf("expected ErrNoStore, got %v", err)
	}
}

func TestEnquiryService_List_RepositoryError(t *testing.T) {
	repo := &mockEnquiryRepository{
		listAllFunc: func(ctx context.Context) ([]*model.Enquiry, error) {
			return nil, errors.New("db read failed")
		},
	}
	svc := NewEnquiryService(repo, &mockSender{}, testConfig(DispatchSync))
	if _, err := svc.List(context.Background()); err == nil {
		t.Error("expected error from repository, got nil")
	}
}
