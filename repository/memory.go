package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"coworking_market/constants"
	"coworking_market/model"
)

// memory keeps every table as a map of values. Relations are attached on
// read and stripped on write, mirroring what the gorm store preloads.
type memory struct {
	mu sync.RWMutex

	seq        uint
	users      map[uint]model.User
	areas      map[uint]model.Area
	locations  map[uint]model.Location
	workspaces map[uint]model.WorkSpace
	bookings   map[uint]model.Booking
	viewings   map[uint]model.Viewing
	internal   map[uint]model.InternalNotification
	push       map[uint]model.PushNotification
}

// NewMemoryStore returns a Store backed by process memory.
func NewMemoryStore() *Store {
	m := &memory{
		users:      map[uint]model.User{},
		areas:      map[uint]model.Area{},
		locations:  map[uint]model.Location{},
		workspaces: map[uint]model.WorkSpace{},
		bookings:   map[uint]model.Booking{},
		viewings:   map[uint]model.Viewing{},
		internal:   map[uint]model.InternalNotification{},
		push:       map[uint]model.PushNotification{},
	}
	return &Store{
		Users:         &memUsers{m},
		Areas:         &memAreas{m},
		Locations:     &memLocations{m},
		WorkSpaces:    &memWorkSpaces{m},
		Bookings:      &memBookings{m},
		Viewings:      &memViewings{m},
		Notifications: &memNotifications{m},
	}
}

func (m *memory) stamp(dto *model.DTO) {
	now := time.Now()
	if dto.ID == 0 {
		m.seq++
		dto.ID = m.seq
	}
	if dto.CreatedAt.IsZero() {
		dto.CreatedAt = now
	}
	dto.UpdatedAt = now
}

func sortedKeys[V any](in map[uint]V) []uint {
	keys := make([]uint, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

type memUsers struct{ m *memory }

func (r *memUsers) FindByID(_ context.Context, id uint) (*model.User, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	u, ok := r.m.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *memUsers) FindByEmail(_ context.Context, email string) (*model.User, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	for _, id := range sortedKeys(r.m.users) {
		if u := r.m.users[id]; u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *memUsers) Create(_ context.Context, user *model.User) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if user.Status == "" {
		user.Status = constants.USER_STATUS_REGISTERED
	}
	r.m.stamp(&user.DTO)
	r.m.users[user.ID] = *user
	return nil
}

func (r *memUsers) Save(ctx context.Context, user *model.User) error {
	return r.Create(ctx, user)
}

type memAreas struct{ m *memory }

func (r *memAreas) FindBySlug(_ context.Context, slug string) (*model.Area, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	for _, id := range sortedKeys(r.m.areas) {
		if a := r.m.areas[id]; a.Slug == slug {
			return &a, nil
		}
	}
	return nil, nil
}

func (r *memAreas) SlugExists(ctx context.Context, slug string) (bool, error) {
	a, err := r.FindBySlug(ctx, slug)
	return a != nil, err
}

func (r *memAreas) Create(_ context.Context, area *model.Area) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.stamp(&area.DTO)
	r.m.areas[area.ID] = *area
	return nil
}

type memLocations struct{ m *memory }

func (r *memLocations) attachArea(l *model.Location) {
	if l.AreaId == nil {
		l.Area = nil
		return
	}
	if a, ok := r.m.areas[*l.AreaId]; ok {
		l.Area = &a
	}
}

func (r *memLocations) FindByID(_ context.Context, id uint) (*model.Location, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	l, ok := r.m.locations[id]
	if !ok {
		return nil, nil
	}
	r.attachArea(&l)
	return &l, nil
}

func (r *memLocations) FindByUser(_ context.Context, userID uint) ([]model.Location, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	var out []model.Location
	for _, id := range sortedKeys(r.m.locations) {
		l := r.m.locations[id]
		if l.UserId != userID {
			continue
		}
		l.WorkSpaces = nil
		for _, wid := range sortedKeys(r.m.workspaces) {
			if w := r.m.workspaces[wid]; w.LocationId == l.ID {
				l.WorkSpaces = append(l.WorkSpaces, w)
			}
		}
		out = append(out, l)
	}
	return out, nil
}

func (r *memLocations) store(l *model.Location) {
	r.m.stamp(&l.DTO)
	stored := *l
	stored.Area = nil
	stored.User = nil
	stored.WorkSpaces = nil
	r.m.locations[l.ID] = stored
}

func (r *memLocations) Create(_ context.Context, location *model.Location) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.store(location)
	return nil
}

func (r *memLocations) Save(_ context.Context, location *model.Location) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.store(location)
	return nil
}

func (r *memLocations) Delete(_ context.Context, location *model.Location) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	delete(r.m.locations, location.ID)
	for wid, w := range r.m.workspaces {
		if w.LocationId != location.ID {
			continue
		}
		delete(r.m.workspaces, wid)
		for vid, v := range r.m.viewings {
			if v.WorkSpaceId != wid {
				continue
			}
			delete(r.m.viewings, vid)
			for nid, n := range r.m.internal {
				if n.ViewingId != nil && *n.ViewingId == vid {
					delete(r.m.internal, nid)
				}
			}
		}
		for bid, b := range r.m.bookings {
			if b.WorkSpaceId == wid {
				delete(r.m.bookings, bid)
			}
		}
	}
	return nil
}

type memWorkSpaces struct{ m *memory }

func (r *memWorkSpaces) FindByID(_ context.Context, id uint) (*model.WorkSpace, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	w, ok := r.m.workspaces[id]
	if !ok {
		return nil, nil
	}
	if l, ok := r.m.locations[w.LocationId]; ok {
		w.Location = &l
	}
	return &w, nil
}

func (r *memWorkSpaces) Create(_ context.Context, workspace *model.WorkSpace) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if workspace.Status == "" {
		workspace.Status = constants.WORKSPACE_ACTIVE
	}
	r.m.stamp(&workspace.DTO)
	stored := *workspace
	stored.Location = nil
	stored.Viewings = nil
	stored.Bookings = nil
	r.m.workspaces[workspace.ID] = stored
	return nil
}

func (r *memWorkSpaces) Counts(_ context.Context, ids []uint) (map[uint]model.WorkspaceCounts, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	wanted := make(map[uint]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	out := make(map[uint]model.WorkspaceCounts, len(ids))
	for _, b := range r.m.bookings {
		if wanted[b.WorkSpaceId] {
			c := out[b.WorkSpaceId]
			c.Bookings++
			out[b.WorkSpaceId] = c
		}
	}
	for _, v := range r.m.viewings {
		if wanted[v.WorkSpaceId] {
			c := out[v.WorkSpaceId]
			c.Viewings++
			out[v.WorkSpaceId] = c
		}
	}
	return out, nil
}

type memBookings struct{ m *memory }

func (r *memBookings) Create(_ context.Context, booking *model.Booking) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.stamp(&booking.DTO)
	r.m.bookings[booking.ID] = *booking
	return nil
}

type memViewings struct{ m *memory }

func (r *memViewings) hydrate(v *model.Viewing) {
	if u, ok := r.m.users[v.UserId]; ok {
		v.User = &u
	}
	if w, ok := r.m.workspaces[v.WorkSpaceId]; ok {
		if l, ok := r.m.locations[w.LocationId]; ok {
			w.Location = &l
		}
		v.WorkSpace = &w
	}
	v.InternalNotification = nil
	for _, id := range sortedKeys(r.m.internal) {
		n := r.m.internal[id]
		if n.ViewingId != nil && *n.ViewingId == v.ID {
			v.InternalNotification = &n
			break
		}
	}
}

func (r *memViewings) FindByID(_ context.Context, id uint) (*model.Viewing, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	v, ok := r.m.viewings[id]
	if !ok {
		return nil, nil
	}
	r.hydrate(&v)
	return &v, nil
}

func (r *memViewings) FindInWorkSpace(ctx context.Context, workspaceID, id uint) (*model.Viewing, error) {
	v, err := r.FindByID(ctx, id)
	if err != nil || v == nil || v.WorkSpaceId != workspaceID {
		return nil, err
	}
	return v, nil
}

func (r *memViewings) FindByWorkSpace(_ context.Context, workspaceID uint) ([]model.Viewing, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	var out []model.Viewing
	for _, id := range sortedKeys(r.m.viewings) {
		v := r.m.viewings[id]
		if v.WorkSpaceId != workspaceID {
			continue
		}
		if u, ok := r.m.users[v.UserId]; ok {
			v.User = &u
		}
		out = append(out, v)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (r *memViewings) FindAcceptedBetween(_ context.Context, from, to time.Time) ([]model.Viewing, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	var out []model.Viewing
	for _, id := range sortedKeys(r.m.viewings) {
		v := r.m.viewings[id]
		if v.Status != constants.VIEWING_ACCEPTED || v.StartTime.Before(from) || !v.StartTime.Before(to) {
			continue
		}
		r.hydrate(&v)
		out = append(out, v)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartTime.Before(out[j].StartTime) })
	return out, nil
}

func (r *memViewings) store(v *model.Viewing) {
	r.m.stamp(&v.DTO)
	stored := *v
	stored.User = nil
	stored.WorkSpace = nil
	stored.InternalNotification = nil
	r.m.viewings[v.ID] = stored
}

func (r *memViewings) Create(_ context.Context, viewing *model.Viewing) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.store(viewing)
	return nil
}

func (r *memViewings) Save(_ context.Context, viewing *model.Viewing) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.store(viewing)
	return nil
}

type memNotifications struct{ m *memory }

func (r *memNotifications) CreateInternal(_ context.Context, n *model.InternalNotification) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.stamp(&n.DTO)
	r.m.internal[n.ID] = *n
	return nil
}

func (r *memNotifications) SaveInternal(ctx context.Context, n *model.InternalNotification) error {
	return r.CreateInternal(ctx, n)
}

func (r *memNotifications) FindInternalByID(_ context.Context, id uint) (*model.InternalNotification, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	n, ok := r.m.internal[id]
	if !ok {
		return nil, nil
	}
	return &n, nil
}

func (r *memNotifications) FindInternalByUser(_ context.Context, userID uint) ([]model.InternalNotification, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	keys := sortedKeys(r.m.internal)
	var out []model.InternalNotification
	for i := len(keys) - 1; i >= 0; i-- {
		if n := r.m.internal[keys[i]]; n.UserId == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *memNotifications) CreatePush(_ context.Context, n *model.PushNotification) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.stamp(&n.DTO)
	r.m.push[n.ID] = *n
	return nil
}

func (r *memNotifications) SavePush(ctx context.Context, n *model.PushNotification) error {
	return r.CreatePush(ctx, n)
}

func (r *memNotifications) FindPushByID(_ context.Context, id uint) (*model.PushNotification, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	n, ok := r.m.push[id]
	if !ok {
		return nil, nil
	}
	return &n, nil
}

func (r *memNotifications) FindPushByUser(_ context.Context, userID uint) ([]model.PushNotification, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	keys := sortedKeys(r.m.push)
	var out []model.PushNotification
	for i := len(keys) - 1; i >= 0; i-- {
		if n := r.m.push[keys[i]]; n.UserId == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *memNotifications) DeleteCheckedPushBefore(_ context.Context, before time.Time) (int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var n int64
	for id, p := range r.m.push {
		if p.Checked && p.CreatedAt.Before(before) {
			delete(r.m.push, id)
			n++
		}
	}
	return n, nil
}
