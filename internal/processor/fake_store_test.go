package processor

import (
	"context"

	"github.com/iliyamo/theatre-data-processor/internal/model"
)

var (
	_ Store  = (*fakeStore)(nil)
	_ Source = (*fakeStore)(nil)
)

// fakeStore keeps committed entities in memory and assigns IDs on commit.
type fakeStore struct {
	plays    []*model.Play
	casts    []*model.Cast
	theatres []*model.Theatre

	stagedData struct {
		plays    []*model.Play
		casts    []*model.Cast
		theatres []*model.Theatre
	}

	saveCalls int
	saveErr   error
	nextID    uint64
}

func newFakeStore() *fakeStore {
	return &fakeStore{}
}

func (s *fakeStore) AddPlays(plays ...*model.Play) {
	s.stagedData.plays = append(s.stagedData.plays, plays...)
}

func (s *fakeStore) AddCasts(casts ...*model.Cast) {
	s.stagedData.casts = append(s.stagedData.casts, casts...)
}

func (s *fakeStore) AddTheatres(theatres ...*model.Theatre) {
	s.stagedData.theatres = append(s.stagedData.theatres, theatres...)
}

func (s *fakeStore) SaveChanges(ctx context.Context) error {
	s.saveCalls++
	if s.saveErr != nil {
		return s.saveErr
	}
	for _, p := range s.stagedData.plays {
		s.nextID++
		p.ID = s.nextID
	}
	for _, t := range s.stagedData.theatres {
		s.nextID++
		t.ID = s.nextID
	}
	s.plays = append(s.plays, s.stagedData.plays...)
	s.casts = append(s.casts, s.stagedData.casts...)
	s.theatres = append(s.theatres, s.stagedData.theatres...)
	s.stagedData.plays, s.stagedData.casts, s.stagedData.theatres = nil, nil, nil
	return nil
}

func (s *fakeStore) Theatres(ctx context.Context, minHalls int) ([]*model.Theatre, error) {
	return s.theatres, nil
}

func (s *fakeStore) Plays(ctx context.Context) ([]*model.Play, error) {
	return s.plays, nil
}
