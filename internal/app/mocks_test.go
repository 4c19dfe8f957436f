package app

import (
	"context"
	"errors"
	"time"

	"orbit/internal/domain"
)

// ---------------------------------------------------------------------------
// Mock repositories (function-fields pattern)
// ---------------------------------------------------------------------------

// constraintErr mimics a store error carrying a named constraint.
type constraintErr struct {
	name string
}

func (e *constraintErr) Error() string          { return "violates " + e.name }
func (e *constraintErr) ConstraintName() string { return e.name }

type mockUserRepo struct {
	getByIDFn       func(ctx context.Context, id domain.ID) (*domain.User, error)
	getByTwitchIDFn func(ctx context.Context, twitchID int64) (*domain.User, error)
	createFn        func(ctx context.Context, user *domain.User, channelSet *domain.EmoteSet) error
	listEditorsFn   func(ctx context.Context, id domain.ID) ([]domain.User, error)
	addEditorFn     func(ctx context.Context, userID, editorID domain.ID) error
	removeEditorFn  func(ctx context.Context, userID, editorID domain.ID) (bool, error)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) GetByTwitchID(ctx context.Context, twitchID int64) (*domain.User, error) {
	if m.getByTwitchIDFn != nil {
		return m.getByTwitchIDFn(ctx, twitchID)
	}
	return nil, nil
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User, channelSet *domain.EmoteSet) error {
	if m.createFn != nil {
		return m.createFn(ctx, user, channelSet)
	}
	return nil
}

func (m *mockUserRepo) ListEditors(ctx context.Context, id domain.ID) ([]domain.User, error) {
	if m.listEditorsFn != nil {
		return m.listEditorsFn(ctx, id)
	}
	return []domain.User{}, nil
}

func (m *mockUserRepo) AddEditor(ctx context.Context, userID, editorID domain.ID) error {
	if m.addEditorFn != nil {
		return m.addEditorFn(ctx, userID, editorID)
	}
	return nil
}

func (m *mockUserRepo) RemoveEditor(ctx context.Context, userID, editorID domain.ID) (bool, error) {
	if m.removeEditorFn != nil {
		return m.removeEditorFn(ctx, userID, editorID)
	}
	return true, nil
}

type mockSessionRepo struct {
	createFn        func(ctx context.Context, token string, userID domain.ID, expiresAt time.Time) error
	getByTokenFn    func(ctx context.Context, token string) (*domain.Session, error)
	deleteFn        func(ctx context.Context, token string) error
	deleteExpiredFn func(ctx context.Context) error
}

func (m *mockSessionRepo) Create(ctx context.Context, token string, userID domain.ID, expiresAt time.Time) error {
	if m.createFn != nil {
		return m.createFn(ctx, token, userID, expiresAt)
	}
	return nil
}

func (m *mockSessionRepo) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	if m.getByTokenFn != nil {
		return m.getByTokenFn(ctx, token)
	}
	return nil, nil
}

func (m *mockSessionRepo) Delete(ctx context.Context, token string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, token)
	}
	return nil
}

func (m *mockSessionRepo) DeleteExpired(ctx context.Context) error {
	if m.deleteExpiredFn != nil {
		return m.deleteExpiredFn(ctx)
	}
	return nil
}

type mockEmoteRepo struct {
	createFn      func(ctx context.Context, emote *domain.Emote) error
	getFn         func(ctx context.Context, id domain.ID) (*domain.Emote, error)
	getWithUserFn func(ctx context.Context, id domain.ID) (*domain.EmoteWithUser, error)
	getManyFn     func(ctx context.Context, ids []domain.ID) ([]domain.Emote, error)
	updateFn      func(ctx context.Context, id domain.ID, update domain.EmoteUpdate) (*domain.Emote, error)
	deleteFn      func(ctx context.Context, id domain.ID) (bool, error)
	listByUserFn  func(ctx context.Context, userID domain.ID) ([]domain.Emote, error)
}

func (m *mockEmoteRepo) Create(ctx context.Context, emote *domain.Emote) error {
	if m.createFn != nil {
		return m.createFn(ctx, emote)
	}
	return nil
}

func (m *mockEmoteRepo) Get(ctx context.Context, id domain.ID) (*domain.Emote, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, nil
}

func (m *mockEmoteRepo) GetWithUser(ctx context.Context, id domain.ID) (*domain.EmoteWithUser, error) {
	if m.getWithUserFn != nil {
		return m.getWithUserFn(ctx, id)
	}
	return nil, nil
}

func (m *mockEmoteRepo) GetMany(ctx context.Context, ids []domain.ID) ([]domain.Emote, error) {
	if m.getManyFn != nil {
		return m.getManyFn(ctx, ids)
	}
	return []domain.Emote{}, nil
}

func (m *mockEmoteRepo) Update(ctx context.Context, id domain.ID, update domain.EmoteUpdate) (*domain.Emote, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, update)
	}
	return nil, nil
}

func (m *mockEmoteRepo) Delete(ctx context.Context, id domain.ID) (bool, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return true, nil
}

func (m *mockEmoteRepo) ListByUser(ctx context.Context, userID domain.ID) ([]domain.Emote, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID)
	}
	return []domain.Emote{}, nil
}

type mockEmoteIndex struct {
	indexFn  func(ctx context.Context, emote *domain.Emote) error
	removeFn func(ctx context.Context, id domain.ID) error
	searchFn func(ctx context.Context, query string, limit int) ([]domain.ID, error)
}

func (m *mockEmoteIndex) Index(ctx context.Context, emote *domain.Emote) error {
	if m.indexFn != nil {
		return m.indexFn(ctx, emote)
	}
	return nil
}

func (m *mockEmoteIndex) Remove(ctx context.Context, id domain.ID) error {
	if m.removeFn != nil {
		return m.removeFn(ctx, id)
	}
	return nil
}

func (m *mockEmoteIndex) Search(ctx context.Context, query string, limit int) ([]domain.ID, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, query, limit)
	}
	return []domain.ID{}, nil
}

type mockSetRepo struct {
	createFn         func(ctx context.Context, set *domain.EmoteSet) error
	getFn            func(ctx context.Context, id domain.ID) (*domain.EmoteSet, error)
	getWithEmotesFn  func(ctx context.Context, id domain.ID) (*domain.EmoteSetWithEmotes, error)
	updateFn         func(ctx context.Context, id domain.ID, update domain.EmoteSetUpdate) (*domain.EmoteSet, error)
	deleteFn         func(ctx context.Context, id domain.ID) (bool, error)
	addEmoteFn       func(ctx context.Context, setID, emoteID domain.ID) error
	removeEmoteFn    func(ctx context.Context, setID, emoteID domain.ID) (bool, error)
	listByUserFn     func(ctx context.Context, userID domain.ID) ([]domain.EmoteSet, error)
	channelForUserFn func(ctx context.Context, userID domain.ID) (*domain.EmoteSet, error)
}

func (m *mockSetRepo) Create(ctx context.Context, set *domain.EmoteSet) error {
	if m.createFn != nil {
		return m.createFn(ctx, set)
	}
	return nil
}

func (m *mockSetRepo) Get(ctx context.Context, id domain.ID) (*domain.EmoteSet, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, nil
}

func (m *mockSetRepo) GetWithEmotes(ctx context.Context, id domain.ID) (*domain.EmoteSetWithEmotes, error) {
	if m.getWithEmotesFn != nil {
		return m.getWithEmotesFn(ctx, id)
	}
	return nil, nil
}

func (m *mockSetRepo) Update(ctx context.Context, id domain.ID, update domain.EmoteSetUpdate) (*domain.EmoteSet, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, update)
	}
	return nil, nil
}

func (m *mockSetRepo) Delete(ctx context.Context, id domain.ID) (bool, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return true, nil
}

func (m *mockSetRepo) AddEmote(ctx context.Context, setID, emoteID domain.ID) error {
	if m.addEmoteFn != nil {
		return m.addEmoteFn(ctx, setID, emoteID)
	}
	return nil
}

func (m *mockSetRepo) RemoveEmote(ctx context.Context, setID, emoteID domain.ID) (bool, error) {
	if m.removeEmoteFn != nil {
		return m.removeEmoteFn(ctx, setID, emoteID)
	}
	return true, nil
}

func (m *mockSetRepo) ListByUser(ctx context.Context, userID domain.ID) ([]domain.EmoteSet, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID)
	}
	return []domain.EmoteSet{}, nil
}

func (m *mockSetRepo) ChannelForUser(ctx context.Context, userID domain.ID) (*domain.EmoteSet, error) {
	if m.channelForUserFn != nil {
		return m.channelForUserFn(ctx, userID)
	}
	return nil, nil
}

type mockColorRepo struct {
	createFn func(ctx context.Context, color *domain.Color) error
	getFn    func(ctx context.Context, id domain.ID) (*domain.Color, error)
}

func (m *mockColorRepo) Create(ctx context.Context, color *domain.Color) error {
	if m.createFn != nil {
		return m.createFn(ctx, color)
	}
	return nil
}

func (m *mockColorRepo) Get(ctx context.Context, id domain.ID) (*domain.Color, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, nil
}

var errStore = errors.New("store failure")
