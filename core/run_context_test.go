package core

import "testing"

func TestRunContext_EmitEventStateAndArtifacts(t *testing.T) {
	rc, emitCh := newRunContextForTest()
	rc.SetState("foo", "bar")
	rc.AddArtifact("file1")
	ev := NewEvent(rc.RunID, "agent1")
	if err := rc.EmitEvent(ev); err != nil {
		t.Fatalf("EmitEvent error: %v", err)
	}
	received := <-emitCh
	if received.Actions.StateDelta["foo"].(string) != "bar" {
		t.Fatalf("State delta missing: %+v", received.Actions)
	}
	if received.Actions.ArtifactDelta["file1"] != 1 {
		t.Fatalf("Artifact delta missing: %+v", received.Actions)
	}
	if len(rc.StateDelta) != 0 || len(rc.Artifacts) != 0 {
		t.Fatal("StateDelta & Artifacts should clear after emit")
	}
}

func TestRunContext_CommitStateDelta(t *testing.T) {
	rc, _ := newRunContextForTest()
	sStore := rc.SessionStore.(*mockSessionStore)
	rc.SetState("k1", 123)
	if err := rc.CommitStateDelta(); err != nil {
		t.Fatalf("CommitStateDelta error: %v", err)
	}
	if sStore.applied == nil || sStore.applied[rc.SessionID]["k1"].(int) != 123 {
		t.Fatalf("State delta not applied: %+v", sStore.applied)
	}
	if len(rc.StateDelta) != 0 {
		t.Error("StateDelta should be cleared after commit")
	}
}

func TestRunContext_StateLookupPrefersStagedDelta(t *testing.T) {
	rc, _ := newRunContextForTest()
	rc.Session.SetState("k", "persisted")
	if v, ok := rc.GetState("k"); !ok || v.(string) != "persisted" {
		t.Fatalf("expected persisted value, got %v", v)
	}
	rc.SetState("k", "staged")
	if v, _ := rc.GetState("k"); v.(string) != "staged" {
		t.Fatalf("expected staged value, got %v", v)
	}
}

func TestRunContext_ArtifactRoundTrip(t *testing.T) {
	rc, _ := newRunContextForTest()
	if err := rc.SaveArtifact("a1", []byte("payload")); err != nil {
		t.Fatalf("SaveArtifact error: %v", err)
	}
	b, err := rc.GetArtifact("a1")
	if err != nil || string(b) != "payload" {
		t.Fatalf("GetArtifact mismatch: %v %q", err, string(b))
	}
	if len(rc.Artifacts) != 1 || rc.Artifacts[0] != "a1" {
		t.Fatalf("artifact not staged: %+v", rc.Artifacts)
	}
}
