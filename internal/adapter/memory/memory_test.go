package memory

import (
	"context"
	"testing"
	"time"

	"orbit/internal/dberr"
	"orbit/internal/domain"
)

func seedUser(t *testing.T, db *DB, id domain.ID, twitchID int64) *domain.User {
	t.Helper()
	user := &domain.User{
		ID:           id,
		TwitchID:     twitchID,
		Username:     "user",
		Roles:        []domain.Role{},
		ChannelSetID: id + 1000,
	}
	set := &domain.EmoteSet{ID: id + 1000, Name: "Channel", Capacity: 500, UserID: id}
	if err := NewUserRepo(db).Create(context.Background(), user, set); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestUserRepo_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	db := New()
	repo := NewUserRepo(db)
	seedUser(t, db, 1, 100)

	user, err := repo.GetByID(ctx, 1)
	if err != nil || user == nil {
		t.Fatalf("expected user, got %v %v", user, err)
	}

	user, err = repo.GetByTwitchID(ctx, 100)
	if err != nil || user == nil || user.ID != 1 {
		t.Fatalf("expected user by twitch id, got %v %v", user, err)
	}

	missing, err := repo.GetByID(ctx, 999)
	if err != nil || missing != nil {
		t.Errorf("expected (nil, nil) for missing user, got %v %v", missing, err)
	}

	set, err := NewSetRepo(db).ChannelForUser(ctx, 1)
	if err != nil || set == nil || set.Name != "Channel" {
		t.Fatalf("expected channel set created with user, got %v %v", set, err)
	}
}

func TestUserRepo_Create_DuplicateTwitchID(t *testing.T) {
	db := New()
	seedUser(t, db, 1, 100)

	user := &domain.User{ID: 2, TwitchID: 100, ChannelSetID: 1002}
	set := &domain.EmoteSet{ID: 1002, UserID: 2}
	err := NewUserRepo(db).Create(context.Background(), user, set)

	var cn dberr.ConstraintNamer
	if err == nil {
		t.Fatal("expected constraint error")
	}
	if !asConstraint(err, &cn) || cn.ConstraintName() != "users_twitch_id_key" {
		t.Errorf("expected users_twitch_id_key, got %v", err)
	}
}

func TestUserRepo_Editors(t *testing.T) {
	ctx := context.Background()
	db := New()
	repo := NewUserRepo(db)
	seedUser(t, db, 1, 100)
	seedUser(t, db, 2, 200)

	var cn dberr.ConstraintNamer
	if err := repo.AddEditor(ctx, 1, 1); !asConstraint(err, &cn) || cn.ConstraintName() != "user_cannot_add_self" {
		t.Errorf("expected user_cannot_add_self, got %v", err)
	}
	if err := repo.AddEditor(ctx, 1, 999); !asConstraint(err, &cn) || cn.ConstraintName() != "users_to_editors_editor_id_fkey" {
		t.Errorf("expected editor fkey violation, got %v", err)
	}

	if err := repo.AddEditor(ctx, 1, 2); err != nil {
		t.Fatalf("add editor: %v", err)
	}
	// duplicate add is a no-op
	if err := repo.AddEditor(ctx, 1, 2); err != nil {
		t.Fatalf("re-add editor: %v", err)
	}

	editors, err := repo.ListEditors(ctx, 1)
	if err != nil || len(editors) != 1 || editors[0].ID != 2 {
		t.Fatalf("expected one editor, got %v %v", editors, err)
	}

	removed, err := repo.RemoveEditor(ctx, 1, 2)
	if err != nil || !removed {
		t.Fatalf("expected removal, got %v %v", removed, err)
	}
	removed, err = repo.RemoveEditor(ctx, 1, 2)
	if err != nil || removed {
		t.Errorf("expected no-op removal, got %v %v", removed, err)
	}
}

func TestSessionRepo_Lifecycle(t *testing.T) {
	ctx := context.Background()
	db := New()
	repo := NewSessionRepo(db)

	if err := repo.Create(ctx, "tok", 42, time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("create: %v", err)
	}

	s, err := repo.GetByToken(ctx, "tok")
	if err != nil || s == nil || s.UserID != 42 {
		t.Fatalf("expected session, got %v %v", s, err)
	}

	if err := repo.Delete(ctx, "tok"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	s, err = repo.GetByToken(ctx, "tok")
	if err != nil || s != nil {
		t.Errorf("expected (nil, nil) after delete, got %v %v", s, err)
	}
}

func TestSessionRepo_DeleteExpired(t *testing.T) {
	ctx := context.Background()
	db := New()
	repo := NewSessionRepo(db)

	_ = repo.Create(ctx, "old", 1, time.Now().Add(-time.Minute))
	_ = repo.Create(ctx, "fresh", 1, time.Now().Add(time.Hour))

	if err := repo.DeleteExpired(ctx); err != nil {
		t.Fatalf("sweep: %v", err)
	}

	if s, _ := repo.GetByToken(ctx, "old"); s != nil {
		t.Error("expected expired session removed")
	}
	if s, _ := repo.GetByToken(ctx, "fresh"); s == nil {
		t.Error("expected live session kept")
	}
}

func TestEmoteRepo_Lifecycle(t *testing.T) {
	ctx := context.Background()
	db := New()
	repo := NewEmoteRepo(db)
	seedUser(t, db, 1, 100)

	emote := &domain.Emote{ID: 10, Name: "forsenE", Tags: []string{}, UserID: 1}
	if err := repo.Create(ctx, emote); err != nil {
		t.Fatalf("create: %v", err)
	}

	with, err := repo.GetWithUser(ctx, 10)
	if err != nil || with == nil || with.User.ID != 1 {
		t.Fatalf("expected emote with owner, got %v %v", with, err)
	}

	approved := true
	updated, err := repo.Update(ctx, 10, domain.EmoteUpdate{Approved: &approved})
	if err != nil || updated == nil || !updated.Approved {
		t.Fatalf("expected approved update, got %v %v", updated, err)
	}

	list, err := repo.ListByUser(ctx, 1)
	if err != nil || len(list) != 1 {
		t.Fatalf("expected one emote, got %v %v", list, err)
	}

	deleted, err := repo.Delete(ctx, 10)
	if err != nil || !deleted {
		t.Fatalf("expected delete, got %v %v", deleted, err)
	}
	deleted, err = repo.Delete(ctx, 10)
	if err != nil || deleted {
		t.Errorf("expected no-op delete, got %v %v", deleted, err)
	}
}

func TestSetRepo_Members(t *testing.T) {
	ctx := context.Background()
	db := New()
	sets := NewSetRepo(db)
	emotes := NewEmoteRepo(db)
	seedUser(t, db, 1, 100)

	if err := sets.Create(ctx, &domain.EmoteSet{ID: 20, Name: "Favorites", Capacity: 25, UserID: 1}); err != nil {
		t.Fatalf("create set: %v", err)
	}
	if err := emotes.Create(ctx, &domain.Emote{ID: 10, Name: "forsenE", UserID: 1}); err != nil {
		t.Fatalf("create emote: %v", err)
	}

	var cn dberr.ConstraintNamer
	if err := sets.AddEmote(ctx, 999, 10); !asConstraint(err, &cn) || cn.ConstraintName() != "emotes_to_sets_set_id_fkey" {
		t.Errorf("expected set fkey violation, got %v", err)
	}
	if err := sets.AddEmote(ctx, 20, 999); !asConstraint(err, &cn) || cn.ConstraintName() != "emotes_to_sets_emote_id_fkey" {
		t.Errorf("expected emote fkey violation, got %v", err)
	}

	if err := sets.AddEmote(ctx, 20, 10); err != nil {
		t.Fatalf("add emote: %v", err)
	}

	with, err := sets.GetWithEmotes(ctx, 20)
	if err != nil || with == nil || len(with.Emotes) != 1 {
		t.Fatalf("expected set with one emote, got %v %v", with, err)
	}

	removed, err := sets.RemoveEmote(ctx, 20, 10)
	if err != nil || !removed {
		t.Fatalf("expected removal, got %v %v", removed, err)
	}
}

func TestColorRepo_DuplicateName(t *testing.T) {
	ctx := context.Background()
	db := New()
	repo := NewColorRepo(db)

	if err := repo.Create(ctx, &domain.Color{ID: 1, Name: "lava"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	var cn dberr.ConstraintNamer
	err := repo.Create(ctx, &domain.Color{ID: 2, Name: "lava"})
	if !asConstraint(err, &cn) || cn.ConstraintName() != "colors_name_key" {
		t.Errorf("expected colors_name_key, got %v", err)
	}
}

func asConstraint(err error, target *dberr.ConstraintNamer) bool {
	if err == nil {
		return false
	}
	cn, ok := err.(*constraintError)
	if !ok {
		return false
	}
	*target = cn
	return true
}
