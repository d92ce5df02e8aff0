package entry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"travel-journal/internal/domain/entity"
	entryUC "travel-journal/internal/usecase/entry"
)

// Minimal in-memory EntryRepository stub.
type stubRepo struct {
	data   map[int64]*entity.Entry
	nextID int64
	err    error // forces every method to fail when set
}

func newStub() *stubRepo {
	return &stubRepo{data: map[int64]*entity.Entry{}, nextID: 1}
}

func (s *stubRepo) Create(_ context.Context, e *entity.Entry) error {
	if s.err != nil {
		return s.err
	}
	e.ID = s.nextID
	s.nextID++
	e.CreatedAt = time.Now()
	s.data[e.ID] = e.Clone()
	return nil
}

func (s *stubRepo) Get(_ context.Context, id int64) (*entity.Entry, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.data[id].Clone(), nil
}

func (s *stubRepo) ListByUser(_ context.Context, userID string) ([]*entity.Entry, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []*entity.Entry
	for _, e := range s.data {
		if e.UserID == userID {
			out = append(out, e.Clone())
		}
	}
	return out, nil
}

func (s *stubRepo) GetByShareToken(_ context.Context, token string) (*entity.Entry, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, e := range s.data {
		if e.ShareID == token && e.IsShared {
			return e.Clone(), nil
		}
	}
	return nil, nil
}

func (s *stubRepo) Delete(_ context.Context, id int64) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.data[id]; !ok {
		return entity.ErrNotFound
	}
	delete(s.data, id)
	return nil
}

func (s *stubRepo) UpdateSharing(_ context.Context, id int64, isShared bool, shareID string) (*entity.Entry, error) {
	if s.err != nil {
		return nil, s.err
	}
	e, ok := s.data[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	e.IsShared = isShared
	if shareID != "" {
		e.ShareID = shareID
	}
	return e.Clone(), nil
}

func (s *stubRepo) Count(_ context.Context) (int, error) {
	return len(s.data), s.err
}

func validInput() entryUC.CreateInput {
	return entryUC.CreateInput{
		UserID:     "u1",
		Caption:    "Mount Fuji at dawn",
		ImageURL:   "data:image/jpeg;base64,/9j/4AAQ",
		ScreenInfo: &entity.ScreenInfo{Width: 1080, Height: 1920, Orientation: "Portrait"},
	}
}

func TestCreate_RoundTrip(t *testing.T) {
	svc := entryUC.Service{Repo: newStub()}
	ctx := context.Background()

	in := validInput()
	in.Location = &entity.Location{Lat: 35.3606, Lng: 138.7274}

	created, err := svc.Create(ctx, in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID <= 0 {
		t.Fatalf("no ID assigned: %+v", created)
	}

	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Caption != in.Caption || got.ImageURL != in.ImageURL {
		t.Errorf("round trip changed fields: %+v", got)
	}
	if got.Location == nil || got.Location.Lat != 35.3606 || got.Location.Lng != 138.7274 {
		t.Errorf("location lost precision: %+v", got.Location)
	}
	if got.ScreenInfo != *in.ScreenInfo {
		t.Errorf("screen info changed: %+v", got.ScreenInfo)
	}
}

func TestCreate_DefaultsCaptionAndImage(t *testing.T) {
	svc := entryUC.Service{Repo: newStub()}

	created, err := svc.Create(context.Background(), entryUC.CreateInput{
		UserID:     "u1",
		ScreenInfo: &entity.ScreenInfo{Width: 1080, Height: 1920, Orientation: "Portrait"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Caption != entryUC.DefaultCaption {
		t.Errorf("Caption = %q, want %q", created.Caption, entryUC.DefaultCaption)
	}
	if created.ImageURL != entryUC.PlaceholderImage {
		t.Errorf("ImageURL = %q, want placeholder", created.ImageURL)
	}
}

func TestCreate_CaptionTextFallback(t *testing.T) {
	svc := entryUC.Service{Repo: newStub()}

	created, err := svc.Create(context.Background(), entryUC.CreateInput{
		UserID:      "u1",
		CaptionText: "from the alternate field",
		ScreenInfo:  &entity.ScreenInfo{Width: 800, Height: 600, Orientation: "Landscape"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Caption != "from the alternate field" {
		t.Errorf("Caption = %q, want captionText fallback", created.Caption)
	}
}

func TestCreate_CollectsAllFieldErrors(t *testing.T) {
	stub := newStub()
	svc := entryUC.Service{Repo: stub}

	_, err := svc.Create(context.Background(), entryUC.CreateInput{
		Location: &entity.Location{Lat: 200, Lng: 0},
	})
	if err == nil {
		t.Fatal("expected validation failure")
	}

	var verrs entity.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("error type = %T, want ValidationErrors", err)
	}
	fields := verrs.Fields()
	for _, f := range []string{"userId", "screenInfo", "location"} {
		if _, ok := fields[f]; !ok {
			t.Errorf("missing field %q in %v", f, fields)
		}
	}
	if len(stub.data) != 0 {
		t.Error("entry persisted despite validation failure")
	}
}

func TestCreate_IDsStrictlyIncreasing(t *testing.T) {
	svc := entryUC.Service{Repo: newStub()}
	ctx := context.Background()

	var prev int64
	for i := 0; i < 10; i++ {
		created, err := svc.Create(ctx, validInput())
		if err != nil {
			t.Fatalf("Create #%d: %v", i, err)
		}
		if created.ID <= prev {
			t.Fatalf("ID %d not greater than previous %d", created.ID, prev)
		}
		prev = created.ID
	}
}

func TestGet_IDHandling(t *testing.T) {
	svc := entryUC.Service{Repo: newStub()}
	ctx := context.Background()

	if _, err := svc.Get(ctx, 0); !errors.Is(err, entryUC.ErrInvalidEntryID) {
		t.Errorf("Get(0) = %v, want ErrInvalidEntryID", err)
	}
	if _, err := svc.Get(ctx, 9999); !errors.Is(err, entryUC.ErrEntryNotFound) {
		t.Errorf("Get(9999) = %v, want ErrEntryNotFound", err)
	}
}

func TestDelete_ThenGetNotFound(t *testing.T) {
	svc := entryUC.Service{Repo: newStub()}
	ctx := context.Background()

	created, err := svc.Create(ctx, validInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(ctx, created.ID); !errors.Is(err, entryUC.ErrEntryNotFound) {
		t.Errorf("Get after delete = %v, want ErrEntryNotFound", err)
	}
	if err := svc.Delete(ctx, created.ID); !errors.Is(err, entryUC.ErrEntryNotFound) {
		t.Errorf("second Delete = %v, want ErrEntryNotFound", err)
	}
}

func TestSetSharing_TokenLifecycle(t *testing.T) {
	tokens := []string{"tok-a", "tok-b"}
	i := 0
	svc := entryUC.Service{
		Repo:          newStub(),
		NewShareToken: func() string { tok := tokens[i]; i++; return tok },
	}
	ctx := context.Background()

	created, err := svc.Create(ctx, validInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	first, err := svc.SetSharing(ctx, created.ID, true)
	if err != nil {
		t.Fatalf("SetSharing enable: %v", err)
	}
	if first.ShareID != "tok-a" || !first.IsShared {
		t.Fatalf("first enable: %+v", first)
	}

	// Enabling twice in a row reuses the token.
	second, err := svc.SetSharing(ctx, created.ID, true)
	if err != nil {
		t.Fatalf("SetSharing re-enable: %v", err)
	}
	if second.ShareID != "tok-a" {
		t.Errorf("re-enable regenerated token: %q", second.ShareID)
	}

	// Disable: flag cleared, token kept, lookup stops working.
	off, err := svc.SetSharing(ctx, created.ID, false)
	if err != nil {
		t.Fatalf("SetSharing disable: %v", err)
	}
	if off.IsShared || off.ShareID != "tok-a" {
		t.Errorf("disable: %+v", off)
	}
	if _, err := svc.GetByShareToken(ctx, "tok-a"); !errors.Is(err, entryUC.ErrEntryNotFound) {
		t.Errorf("token still resolves while unshared: %v", err)
	}

	// Reshare: same token again, lookup works again.
	on, err := svc.SetSharing(ctx, created.ID, true)
	if err != nil {
		t.Fatalf("SetSharing reshare: %v", err)
	}
	if on.ShareID != "tok-a" {
		t.Errorf("reshare rotated token: %q", on.ShareID)
	}
	got, err := svc.GetByShareToken(ctx, "tok-a")
	if err != nil {
		t.Fatalf("GetByShareToken: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("token resolved wrong entry: %+v", got)
	}
}

func TestSetSharing_NotFound(t *testing.T) {
	svc := entryUC.Service{Repo: newStub()}
	if _, err := svc.SetSharing(context.Background(), 77, true); !errors.Is(err, entryUC.ErrEntryNotFound) {
		t.Errorf("SetSharing absent id = %v, want ErrEntryNotFound", err)
	}
}

func TestListByUser_RequiresUserID(t *testing.T) {
	svc := entryUC.Service{Repo: newStub()}
	_, err := svc.ListByUser(context.Background(), "")
	var ve *entity.ValidationError
	if !errors.As(err, &ve) || ve.Field != "userId" {
		t.Errorf("ListByUser(\"\") = %v, want userId validation error", err)
	}
}

func TestListByUser_EmptyIsValid(t *testing.T) {
	svc := entryUC.Service{Repo: newStub()}
	got, err := svc.ListByUser(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty result, got %d", len(got))
	}
}

func TestGetByShareToken_EmptyToken(t *testing.T) {
	svc := entryUC.Service{Repo: newStub()}
	if _, err := svc.GetByShareToken(context.Background(), ""); !errors.Is(err, entryUC.ErrEntryNotFound) {
		t.Errorf("empty token = %v, want ErrEntryNotFound", err)
	}
}

func TestRepoErrorsAreWrapped(t *testing.T) {
	boom := errors.New("store exploded")
	svc := entryUC.Service{Repo: &stubRepo{data: map[int64]*entity.Entry{}, nextID: 1, err: boom}}
	ctx := context.Background()

	if _, err := svc.Create(ctx, validInput()); !errors.Is(err, boom) {
		t.Errorf("Create error not wrapped: %v", err)
	}
	if _, err := svc.ListByUser(ctx, "u1"); !errors.Is(err, boom) {
		t.Errorf("ListByUser error not wrapped: %v", err)
	}
	if _, err := svc.Get(ctx, 1); !errors.Is(err, boom) {
		t.Errorf("Get error not wrapped: %v", err)
	}
}
