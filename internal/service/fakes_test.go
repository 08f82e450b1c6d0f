package service

import (
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"

	"attraction-cms-backend/internal/models"
)

type fakeSectionRepo struct {
	mu       sync.Mutex
	sections map[uint]*models.Section
	nextID   uint
}

func newFakeSectionRepo() *fakeSectionRepo {
	return &fakeSectionRepo{sections: make(map[uint]*models.Section), nextID: 1}
}

func (r *fakeSectionRepo) Create(section *models.Section) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	section.ID = r.nextID
	r.nextID++
	copied := *section
	r.sections[section.ID] = &copied
	return nil
}

func (r *fakeSectionRepo) Update(section *models.Section) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sections[section.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *section
	r.sections[section.ID] = &copied
	return nil
}

func (r *fakeSectionRepo) UpdateOrder(id uint, order int, actorID uint, at time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	section, ok := r.sections[id]
	if !ok {
		return 0, nil
	}
	section.Order = order
	section.UpdatedByID = actorID
	section.LastUpdated = at
	return 1, nil
}

func (r *fakeSectionRepo) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sections, id)
	return nil
}

func (r *fakeSectionRepo) GetByID(id uint) (*models.Section, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	section, ok := r.sections[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *section
	return &copied, nil
}

func (r *fakeSectionRepo) GetByName(name string) (*models.Section, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, section := range r.sections {
		if section.Name == name {
			copied := *section
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeSectionRepo) GetActiveByName(name string) (*models.Section, error) {
	section, err := r.GetByName(name)
	if err != nil {
		return nil, err
	}
	if !section.IsActive {
		return nil, gorm.ErrRecordNotFound
	}
	return section, nil
}

func (r *fakeSectionRepo) GetAll() ([]models.Section, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Section, 0, len(r.sections))
	for _, section := range r.sections {
		out = append(out, *section)
	}
	sortSections(out)
	return out, nil
}

func (r *fakeSectionRepo) GetActive() ([]models.Section, error) {
	all, _ := r.GetAll()
	out := all[:0]
	for _, section := range all {
		if section.IsActive {
			out = append(out, section)
		}
	}
	return out, nil
}

func (r *fakeSectionRepo) ExistsByName(name string) (bool, error) {
	_, err := r.GetByName(name)
	if err == nil {
		return true, nil
	}
	return false, nil
}

func (r *fakeSectionRepo) Count() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.sections)), nil
}

func sortSections(sections []models.Section) {
	sort.Slice(sections, func(i, j int) bool {
		if sections[i].Order != sections[j].Order {
			return sections[i].Order < sections[j].Order
		}
		return sections[i].ID < sections[j].ID
	})
}

type fakePageRepo struct {
	mu     sync.Mutex
	pages  map[uint]*models.Page
	nextID uint
}

func newFakePageRepo() *fakePageRepo {
	return &fakePageRepo{pages: make(map[uint]*models.Page), nextID: 1}
}

func (r *fakePageRepo) Create(page *models.Page) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	page.ID = r.nextID
	r.nextID++
	copied := *page
	r.pages[page.ID] = &copied
	return nil
}

func (r *fakePageRepo) Update(page *models.Page) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.pages[page.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *page
	r.pages[page.ID] = &copied
	return nil
}

func (r *fakePageRepo) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.pages, id)
	return nil
}

func (r *fakePageRepo) GetByID(id uint) (*models.Page, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	page, ok := r.pages[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *page
	return &copied, nil
}

func (r *fakePageRepo) GetBySlug(slug string) (*models.Page, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, page := range r.pages {
		if page.Slug == slug {
			copied := *page
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePageRepo) GetAll() ([]models.Page, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Page, 0, len(r.pages))
	for _, page := range r.pages {
		out = append(out, *page)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakePageRepo) ExistsBySlug(slug string) (bool, error) {
	_, err := r.GetBySlug(slug)
	return err == nil, nil
}

func (r *fakePageRepo) Count() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.pages)), nil
}

type fakePageSectionRepo struct {
	mu       sync.Mutex
	sections map[uint]*models.PageSection
	nextID   uint
}

func newFakePageSectionRepo() *fakePageSectionRepo {
	return &fakePageSectionRepo{sections: make(map[uint]*models.PageSection), nextID: 1}
}

func (r *fakePageSectionRepo) Create(section *models.PageSection) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	section.ID = r.nextID
	r.nextID++
	copied := *section
	r.sections[section.ID] = &copied
	return nil
}

func (r *fakePageSectionRepo) Update(section *models.PageSection) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sections[section.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *section
	r.sections[section.ID] = &copied
	return nil
}

func (r *fakePageSectionRepo) UpdateOrder(id uint, order int, actorID uint, at time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	section, ok := r.sections[id]
	if !ok {
		return 0, nil
	}
	section.Order = order
	section.UpdatedByID = actorID
	section.LastUpdated = at
	return 1, nil
}

func (r *fakePageSectionRepo) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sections, id)
	return nil
}

func (r *fakePageSectionRepo) DeleteByPageID(pageID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, section := range r.sections {
		if section.PageID == pageID {
			delete(r.sections, id)
		}
	}
	return nil
}

func (r *fakePageSectionRepo) GetByID(id uint) (*models.PageSection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	section, ok := r.sections[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *section
	return &copied, nil
}

func (r *fakePageSectionRepo) GetByPageID(pageID string) ([]models.PageSection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.PageSection, 0)
	for _, section := range r.sections {
		if section.PageID == pageID {
			out = append(out, *section)
		}
	}
	sortPageSections(out)
	return out, nil
}

func (r *fakePageSectionRepo) GetActiveByPageID(pageID string) ([]models.PageSection, error) {
	all, _ := r.GetByPageID(pageID)
	out := all[:0]
	for _, section := range all {
		if section.IsActive {
			out = append(out, section)
		}
	}
	return out, nil
}

func (r *fakePageSectionRepo) MaxOrder(pageID string) (int, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	max, found := 0, false
	for _, section := range r.sections {
		if section.PageID != pageID {
			continue
		}
		if !found || section.Order > max {
			max = section.Order
		}
		found = true
	}
	return max, found, nil
}

func (r *fakePageSectionRepo) Count() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.sections)), nil
}

func sortPageSections(sections []models.PageSection) {
	sort.Slice(sections, func(i, j int) bool {
		if sections[i].Order != sections[j].Order {
			return sections[i].Order < sections[j].Order
		}
		return sections[i].ID < sections[j].ID
	})
}

type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User), nextID: 1}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = r.nextID
	r.nextID++
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetAll() ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.User, 0, len(r.users))
	for _, user := range r.users {
		out = append(out, *user)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeUserRepo) Count() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}
