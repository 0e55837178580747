package core

import "testing"

func twoPlayerSession(t *testing.T, qs []string) *Session {
	t.Helper()

	host := &Participant{ID: "h", Name: "Ada", Role: RoleHost}
	sess := NewSession("ABC123", "romantic", qs, host)
	if sess.Phase != PhaseWaitingForGuest {
		t.Fatalf("new session phase = %v", sess.Phase)
	}
	if err := sess.AddGuest(&Participant{ID: "g", Name: "Lin", Role: RoleGuest}); err != nil {
		t.Fatalf("add guest: %v", err)
	}
	return sess
}

func TestSessionStart(t *testing.T) {
	sess := twoPlayerSession(t, []string{"q1", "q2"})

	q, ok := sess.Start()
	if !ok || q != "q1" {
		t.Fatalf("start = %q, %v", q, ok)
	}
	if sess.Phase != PhaseQuestionOpen || sess.Cursor != 0 {
		t.Fatalf("after start: phase=%v cursor=%d", sess.Phase, sess.Cursor)
	}
	if _, ok := sess.Start(); ok {
		t.Fatal("second start should be rejected")
	}
}

func TestSessionRejectsThirdParticipant(t *testing.T) {
	sess := twoPlayerSession(t, []string{"q1"})
	if err := sess.AddGuest(&Participant{ID: "x", Role: RoleGuest}); err != ErrGameFull {
		t.Fatalf("expected ErrGameFull, got %v", err)
	}
}

func TestRecordHostAnswerGating(t *testing.T) {
	sess := twoPlayerSession(t, []string{"q1"})

	// Not accepted before the game starts.
	if sess.RecordHostAnswer("h", "Venice") {
		t.Fatal("answer accepted in waiting phase")
	}

	sess.Start()
	if sess.RecordHostAnswer("g", "Venice") {
		t.Fatal("guest submission accepted as host answer")
	}
	if !sess.RecordHostAnswer("h", "Venice") {
		t.Fatal("host answer rejected")
	}
	if sess.RecordHostAnswer("h", "Rome") {
		t.Fatal("duplicate answer accepted")
	}
}

func TestEvaluateGuessMatching(t *testing.T) {
	tests := []struct {
		name    string
		answer  string
		guess   string
		correct bool
	}{
		{"exact", "Venice", "Venice", true},
		{"case insensitive", "Venice", "VENICE", true},
		{"trimmed", "Paris ", "paris", true},
		{"wrong", "Venice", "Rome", false},
		{"substring is not a match", "Venice", "Venic", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := twoPlayerSession(t, []string{"q1"})
			sess.Start()
			sess.RecordHostAnswer("h", tt.answer)

			result, ok := sess.EvaluateGuess("g", tt.guess)
			if !ok {
				t.Fatal("guess not evaluated")
			}
			if result.Correct != tt.correct {
				t.Fatalf("correct = %v, want %v", result.Correct, tt.correct)
			}
			wantScore := 0
			if tt.correct {
				wantScore = 1
			}
			if sess.Guest.Score != wantScore || sess.Host.Score != 0 {
				t.Fatalf("scores host=%d guest=%d", sess.Host.Score, sess.Guest.Score)
			}
			if sess.Phase != PhaseResultShown {
				t.Fatalf("phase = %v after guess", sess.Phase)
			}
		})
	}
}

func TestEvaluateGuessGating(t *testing.T) {
	sess := twoPlayerSession(t, []string{"q1"})
	sess.Start()

	// No host answer recorded yet.
	if _, ok := sess.EvaluateGuess("g", "Venice"); ok {
		t.Fatal("guess evaluated without a host answer")
	}

	sess.RecordHostAnswer("h", "Venice")
	if _, ok := sess.EvaluateGuess("h", "Venice"); ok {
		t.Fatal("host submission evaluated as guess")
	}

	if _, ok := sess.EvaluateGuess("g", "Venice"); !ok {
		t.Fatal("valid guess rejected")
	}
	// Round is closed now.
	if _, ok := sess.EvaluateGuess("g", "Venice"); ok {
		t.Fatal("guess accepted in result phase")
	}
}

func TestAdvanceThroughAllRounds(t *testing.T) {
	sess := twoPlayerSession(t, []string{"q1", "q2"})
	sess.Start()

	sess.RecordHostAnswer("h", "a1")
	sess.EvaluateGuess("g", "a1")

	q, finished, ok := sess.Advance()
	if !ok || finished || q != "q2" {
		t.Fatalf("advance = %q, finished=%v, ok=%v", q, finished, ok)
	}
	if sess.Phase != PhaseQuestionOpen || sess.Cursor != 1 {
		t.Fatalf("after advance: phase=%v cursor=%d", sess.Phase, sess.Cursor)
	}
	if sess.HostAnswered() {
		t.Fatal("pending answer not cleared for new round")
	}

	sess.RecordHostAnswer("h", "a2")
	sess.EvaluateGuess("g", "wrong")

	_, finished, ok = sess.Advance()
	if !ok || !finished {
		t.Fatalf("final advance: finished=%v ok=%v", finished, ok)
	}
	if sess.Phase != PhaseCompleted {
		t.Fatalf("phase = %v, want completed", sess.Phase)
	}
	if sess.Guest.Score != 1 {
		t.Fatalf("guest score = %d, want 1", sess.Guest.Score)
	}

	// No transitions out of completed.
	if _, _, ok := sess.Advance(); ok {
		t.Fatal("advance accepted after completion")
	}
}

func TestScoresOrderHostFirst(t *testing.T) {
	sess := twoPlayerSession(t, []string{"q1"})
	scores := sess.Scores()
	if len(scores) != 2 || scores[0].ID != "h" || scores[1].ID != "g" {
		t.Fatalf("unexpected score order: %+v", scores)
	}
}
