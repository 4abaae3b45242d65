package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/jsamuelsen11/clipdate/internal/domain"
	"github.com/jsamuelsen11/clipdate/internal/domain/date"
	"github.com/jsamuelsen11/clipdate/mocks"
)

// fakeClipboard is an in-memory clipboard that records writes.
type fakeClipboard struct {
	mu       sync.Mutex
	text     string
	reads    int
	writes   []string
	readErr  error
	writeErr error
}

func (f *fakeClipboard) Contents(context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads++
	if f.readErr != nil {
		return "", domain.NewClipboardError(domain.OpRead, f.readErr)
	}
	return f.text, nil
}

func (f *fakeClipboard) SetContents(_ context.Context, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return domain.NewClipboardError(domain.OpWrite, f.writeErr)
	}
	f.text = text
	f.writes = append(f.writes, text)
	return nil
}

// Copy simulates the user copying text.
func (f *fakeClipboard) Copy(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.text = text
}

func (f *fakeClipboard) snapshot() (text string, reads int, writes []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.text, f.reads, append([]string(nil), f.writes...)
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(time.Millisecond)
	}
}

// --- poll ---

func TestPoll_Scenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		copied    string
		wantClip  string
		wantWrite bool
	}{
		{name: "two-digit year", copied: "01/02/21", wantClip: "01/02/2021", wantWrite: true},
		{name: "not a date", copied: "notadate", wantClip: "notadate"},
		{name: "out of range", copied: "13/32/22", wantClip: "13/32/22"},
		{name: "surrounding whitespace", copied: " 12/31/23 ", wantClip: "12/31/2023", wantWrite: true},
		{name: "nineteen hundreds", copied: "07/04/76", wantClip: "07/04/1976", wantWrite: true},
		{name: "already four digits", copied: "07/04/1976", wantClip: "07/04/1976"},
		{name: "empty", copied: "", wantClip: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			clip := &fakeClipboard{text: tt.copied}
			w := NewWatcher(clip, date.Default())

			if _, err := w.poll(context.Background(), "previous"); err != nil {
				t.Fatalf("poll() error = %v", err)
			}

			text, _, writes := clip.snapshot()
			if text != tt.wantClip {
				t.Errorf("clipboard = %q, want %q", text, tt.wantClip)
			}
			if got := len(writes) == 1; got != tt.wantWrite {
				t.Errorf("writes = %q, want write %v", writes, tt.wantWrite)
			}
		})
	}
}

func TestPoll_NoReformatLoop(t *testing.T) {
	t.Parallel()

	tests := []struct {
		policy       BaselinePolicy
		wantBaseline []string
		wantChanges  int64
	}{
		{
			policy:       BaselineFormatted,
			wantBaseline: []string{"11/23/2021", "11/23/2021", "11/23/2021"},
			wantChanges:  1,
		},
		{
			policy:       BaselineOriginal,
			wantBaseline: []string{"11/23/21", "11/23/2021", "11/23/2021"},
			wantChanges:  2,
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.policy), func(t *testing.T) {
			t.Parallel()

			clip := &fakeClipboard{text: "11/23/21"}
			w := NewWatcher(clip, date.Default(), WithBaselinePolicy(tt.policy))

			baseline := ""
			for i, want := range tt.wantBaseline {
				var err error
				baseline, err = w.poll(context.Background(), baseline)
				if err != nil {
					t.Fatalf("poll %d error = %v", i+1, err)
				}
				if baseline != want {
					t.Errorf("poll %d baseline = %q, want %q", i+1, baseline, want)
				}
			}

			_, _, writes := clip.snapshot()
			if len(writes) != 1 || writes[0] != "11/23/2021" {
				t.Errorf("writes = %q, want exactly [\"11/23/2021\"]", writes)
			}

			s := w.Status()
			if s.Ticks != 3 {
				t.Errorf("Ticks = %d, want 3", s.Ticks)
			}
			if s.Changes != tt.wantChanges {
				t.Errorf("Changes = %d, want %d", s.Changes, tt.wantChanges)
			}
			if s.Rewrites != 1 {
				t.Errorf("Rewrites = %d, want 1", s.Rewrites)
			}
		})
	}
}

func TestPoll_NoReformatLoop_CustomLayouts(t *testing.T) {
	t.Parallel()

	transcoder, err := date.NewTranscoder("02.01.06", " 02.01.2006 ")
	if err != nil {
		t.Fatalf("NewTranscoder error = %v", err)
	}

	for _, policy := range []BaselinePolicy{BaselineFormatted, BaselineOriginal} {
		t.Run(string(policy), func(t *testing.T) {
			t.Parallel()

			clip := &fakeClipboard{text: "23.11.21"}
			w := NewWatcher(clip, transcoder, WithBaselinePolicy(policy))

			baseline := ""
			for i := range 3 {
				var err error
				baseline, err = w.poll(context.Background(), baseline)
				if err != nil {
					t.Fatalf("poll %d error = %v", i+1, err)
				}
			}

			_, _, writes := clip.snapshot()
			if len(writes) != 1 || writes[0] != " 23.11.2021 " {
				t.Errorf("writes = %q, want exactly [\" 23.11.2021 \"]", writes)
			}
		})
	}
}

func TestPoll_UnchangedSkipsParse(t *testing.T) {
	t.Parallel()

	clip := mocks.NewMockClipboard(t)
	clip.EXPECT().Contents(mock.Anything).Return("11/23/21", nil).Times(3)

	// No expectations: any Parse or Format call fails the test.
	tc := mocks.NewMockTranscoder(t)

	w := NewWatcher(clip, tc)

	for range 3 {
		baseline, err := w.poll(context.Background(), "11/23/21")
		if err != nil {
			t.Fatalf("poll() error = %v", err)
		}
		if baseline != "11/23/21" {
			t.Errorf("baseline = %q, want unchanged", baseline)
		}
	}

	if s := w.Status(); s.Changes != 0 {
		t.Errorf("Changes = %d, want 0", s.Changes)
	}
}

func TestPoll_UsesTranscoder(t *testing.T) {
	t.Parallel()

	d, _ := date.New(2021, time.November, 23)

	clip := mocks.NewMockClipboard(t)
	clip.EXPECT().Contents(mock.Anything).Return("11/23/21", nil).Once()
	clip.EXPECT().SetContents(mock.Anything, "2021-11-23").Return(nil).Once()

	tc := mocks.NewMockTranscoder(t)
	tc.EXPECT().Parse("11/23/21").Return(d, true).Once()
	tc.EXPECT().Format(d).Return("2021-11-23").Once()

	w := NewWatcher(clip, tc)

	baseline, err := w.poll(context.Background(), "")
	if err != nil {
		t.Fatalf("poll() error = %v", err)
	}
	if baseline != "2021-11-23" {
		t.Errorf("baseline = %q, want %q", baseline, "2021-11-23")
	}
}

func TestPoll_ReadError(t *testing.T) {
	t.Parallel()

	errRead := errors.New("xclip: exit status 1")
	clip := &fakeClipboard{readErr: errRead}
	w := NewWatcher(clip, date.Default())

	baseline, err := w.poll(context.Background(), "kept")
	if !errors.Is(err, domain.ErrClipboard) || !errors.Is(err, errRead) {
		t.Errorf("poll() error = %v, want ErrClipboard wrapping %v", err, errRead)
	}
	if baseline != "kept" {
		t.Errorf("baseline = %q, want %q", baseline, "kept")
	}
}

func TestPoll_WriteError(t *testing.T) {
	t.Parallel()

	errWrite := errors.New("clipboard locked")
	clip := &fakeClipboard{text: "01/02/21", writeErr: errWrite}
	w := NewWatcher(clip, date.Default())

	_, err := w.poll(context.Background(), "")

	var cerr *domain.ClipboardError
	if !errors.As(err, &cerr) {
		t.Fatalf("poll() error = %v, want *domain.ClipboardError", err)
	}
	if cerr.Op != domain.OpWrite {
		t.Errorf("Op = %q, want %q", cerr.Op, domain.OpWrite)
	}
	if s := w.Status(); s.Rewrites != 0 {
		t.Errorf("Rewrites = %d, want 0", s.Rewrites)
	}
}

// --- Run ---

func TestRun_RewritesCopiedDate(t *testing.T) {
	t.Parallel()

	clip := &fakeClipboard{text: "hello"}
	w := NewWatcher(clip, date.Default(), WithInterval(time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- w.Run(ctx) }()

	waitFor(t, "baseline read", func() bool { _, reads, _ := clip.snapshot(); return reads > 1 })
	clip.Copy("01/02/21")
	waitFor(t, "rewrite", func() bool { text, _, _ := clip.snapshot(); return text == "01/02/2021" })

	cancel()
	if err := <-errCh; err != nil {
		t.Errorf("Run() error = %v, want nil on cancellation", err)
	}

	_, _, writes := clip.snapshot()
	if len(writes) != 1 {
		t.Errorf("writes = %q, want one", writes)
	}

	s := w.Status()
	if s.Running {
		t.Error("Running = true after Run returned")
	}
	if s.LastError != nil {
		t.Errorf("LastError = %v, want nil", s.LastError)
	}
}

func TestRun_BaselineIsNotRewritten(t *testing.T) {
	t.Parallel()

	// A date already on the clipboard at startup is the baseline, not a change.
	clip := &fakeClipboard{text: "01/02/21"}
	w := NewWatcher(clip, date.Default(), WithInterval(time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- w.Run(ctx) }()

	waitFor(t, "ticks", func() bool { return w.Status().Ticks >= 5 })
	cancel()
	if err := <-errCh; err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if text, _, writes := clip.snapshot(); text != "01/02/21" || len(writes) != 0 {
		t.Errorf("clipboard = %q writes = %q, want untouched", text, writes)
	}
}

func TestRun_BaselineReadErrorIsFatal(t *testing.T) {
	t.Parallel()

	errRead := errors.New("no display")
	clip := &fakeClipboard{readErr: errRead}
	w := NewWatcher(clip, date.Default(), WithInterval(time.Millisecond))

	err := w.Run(context.Background())
	if !errors.Is(err, domain.ErrClipboard) {
		t.Fatalf("Run() error = %v, want domain.ErrClipboard", err)
	}

	s := w.Status()
	if s.Running {
		t.Error("Running = true after fatal error")
	}
	if !errors.Is(s.LastError, errRead) {
		t.Errorf("LastError = %v, want %v", s.LastError, errRead)
	}
	if s.Ticks != 0 {
		t.Errorf("Ticks = %d, want 0", s.Ticks)
	}
}

func TestRun_PollErrorIsFatal(t *testing.T) {
	t.Parallel()

	errRead := errors.New("xclip: exit status 1")

	clip := mocks.NewMockClipboard(t)
	clip.EXPECT().Contents(mock.Anything).Return("baseline", nil).Once()
	clip.EXPECT().Contents(mock.Anything).
		Return("", domain.NewClipboardError(domain.OpRead, errRead)).Once()

	w := NewWatcher(clip, mocks.NewMockTranscoder(t), WithInterval(time.Millisecond))

	err := w.Run(context.Background())
	if !errors.Is(err, errRead) {
		t.Fatalf("Run() error = %v, want %v", err, errRead)
	}

	if herr := w.HealthCheck(context.Background()); !errors.Is(herr, errRead) {
		t.Errorf("HealthCheck() error = %v, want stopped with %v", herr, errRead)
	}
}

func TestRun_CanceledBeforeStart(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	clip := &fakeClipboard{readErr: context.Canceled}
	w := NewWatcher(clip, date.Default())

	if err := w.Run(ctx); err != nil {
		t.Errorf("Run() error = %v, want nil when canceled", err)
	}
}

func TestRun_AlreadyRunning(t *testing.T) {
	t.Parallel()

	clip := &fakeClipboard{text: "x"}
	w := NewWatcher(clip, date.Default(), WithInterval(time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- w.Run(ctx) }()

	waitFor(t, "running", func() bool { return w.Status().Running })

	if err := w.Run(ctx); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("second Run() error = %v, want ErrAlreadyRunning", err)
	}

	cancel()
	if err := <-errCh; err != nil {
		t.Errorf("Run() error = %v", err)
	}
}

// --- HealthCheck ---

func TestHealthCheck_NotRunning(t *testing.T) {
	t.Parallel()

	w := NewWatcher(&fakeClipboard{}, date.Default())
	if err := w.HealthCheck(context.Background()); err == nil {
		t.Error("HealthCheck() error = nil, want not running")
	}
}

func TestHealthCheck_Stall(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	clock := start

	w := NewWatcher(&fakeClipboard{text: "x"}, date.Default(), WithStallAfter(time.Second))
	w.now = func() time.Time { return clock }

	if !w.begin() {
		t.Fatal("begin() = false, want true")
	}

	clock = start.Add(500 * time.Millisecond)
	if err := w.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() before first tick = %v, want nil", err)
	}

	if _, err := w.poll(context.Background(), "x"); err != nil {
		t.Fatalf("poll() error = %v", err)
	}

	clock = clock.Add(900 * time.Millisecond)
	if err := w.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() within window = %v, want nil", err)
	}

	clock = clock.Add(200 * time.Millisecond)
	if err := w.HealthCheck(context.Background()); err == nil {
		t.Error("HealthCheck() after stall = nil, want error")
	}
}

func TestHealthCheck_StallDisabled(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	clock := start

	w := NewWatcher(&fakeClipboard{}, date.Default())
	w.now = func() time.Time { return clock }
	w.begin()

	clock = start.Add(time.Hour)
	if err := w.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil with stall check disabled", err)
	}
}

// --- Options ---

func TestNewWatcher_Defaults(t *testing.T) {
	t.Parallel()

	w := NewWatcher(&fakeClipboard{}, date.Default(),
		WithInterval(0),
		WithBaselinePolicy("bogus"),
		WithLogger(nil),
		WithTracer(nil),
	)

	if w.interval != DefaultInterval {
		t.Errorf("interval = %v, want %v", w.interval, DefaultInterval)
	}
	if w.policy != BaselineFormatted {
		t.Errorf("policy = %q, want %q", w.policy, BaselineFormatted)
	}
	if w.logger == nil || w.tracer == nil {
		t.Error("nil logger or tracer option replaced the default")
	}
	if got := w.Name(); got != "watcher" {
		t.Errorf("Name() = %q, want %q", got, "watcher")
	}
}

func TestBaselinePolicy_Valid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		policy BaselinePolicy
		want   bool
	}{
		{BaselineFormatted, true},
		{BaselineOriginal, true},
		{"", false},
		{"Formatted", false},
		{"latest", false},
	}

	for _, tt := range tests {
		if got := tt.policy.Valid(); got != tt.want {
			t.Errorf("BaselinePolicy(%q).Valid() = %v, want %v", tt.policy, got, tt.want)
		}
	}
	if got := len(BaselinePolicies()); got != 2 {
		t.Errorf("len(BaselinePolicies()) = %d, want 2", got)
	}
}

func TestWithTracer_RecordsChangeSpan(t *testing.T) {
	t.Parallel()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
	})

	cb := &fakeClipboard{text: "11/23/21"}
	w := NewWatcher(cb, date.Default(), WithTracer(tp.Tracer("watcher")))

	if _, err := w.poll(context.Background(), "previous"); err != nil {
		t.Fatalf("poll() error = %v", err)
	}

	spans := exporter.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("spans = %d, want 1", len(spans))
	}
	if spans[0].Name != "watcher.change" {
		t.Errorf("span name = %q, want %q", spans[0].Name, "watcher.change")
	}
	if got := spans[0].InstrumentationScope.Name; got != "watcher" {
		t.Errorf("scope = %q, want %q", got, "watcher")
	}
}
