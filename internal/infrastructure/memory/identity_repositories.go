package memory

import (
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ── OrganizationRepository ────────────────────────────────────────────────────

// OrganizationRepo implementa repository.OrganizationRepository en memoria.
type OrganizationRepo struct{ s *Store }

// NewOrganizationRepository construye el repositorio.
func NewOrganizationRepository(s *Store) *OrganizationRepo { return &OrganizationRepo{s: s} }

func (r *OrganizationRepo) Create(org *entity.Organization) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, o := range r.s.orgs {
		if o.JoinCode == org.JoinCode {
			return domain.ErrDuplicate
		}
	}
	cp := *org
	r.s.orgs = append(r.s.orgs, &cp)
	return nil
}

func (r *OrganizationRepo) GetByID(id string) (*entity.Organization, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, o := range r.s.orgs {
		if o.ID == id {
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *OrganizationRepo) GetByJoinCode(code string) (*entity.Organization, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, o := range r.s.orgs {
		if o.JoinCode == code {
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

// ── UserRepository ────────────────────────────────────────────────────────────

// UserRepo implementa repository.UserRepository en memoria.
type UserRepo struct{ s *Store }

// NewUserRepository construye el repositorio.
func NewUserRepository(s *Store) *UserRepo { return &UserRepo{s: s} }

func (r *UserRepo) Create(user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == user.Email || u.Name == user.Name {
			return domain.ErrDuplicate
		}
	}
	cp := *user
	r.s.users = append(r.s.users, &cp)
	return nil
}

func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.ID == id })
}

func (r *UserRepo) GetByName(name string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Name == name })
}

func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Email == email })
}

func (r *UserRepo) find(match func(*entity.User) bool) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if match(u) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// ── MembershipRepository ──────────────────────────────────────────────────────

// MembershipRepo implementa repository.MembershipRepository en memoria.
type MembershipRepo struct{ s *Store }

// NewMembershipRepository construye el repositorio.
func NewMembershipRepository(s *Store) *MembershipRepo { return &MembershipRepo{s: s} }

func (r *MembershipRepo) Create(m *entity.Membership) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.memberships {
		if existing.UserID == m.UserID && existing.OrgID == m.OrgID {
			return domain.ErrDuplicate
		}
	}
	cp := *m
	r.s.memberships = append(r.s.memberships, &cp)
	return nil
}

func (r *MembershipRepo) GetByUserAndOrg(userID, orgID string) (*entity.Membership, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.memberships {
		if m.UserID == userID && m.OrgID == orgID {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

// FirstByUser aprovecha que el slice conserva el orden de inserción.
func (r *MembershipRepo) FirstByUser(userID string) (*entity.Membership, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.memberships {
		if m.UserID == userID {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MembershipRepo) UpdateRole(userID, orgID, role string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, m := range r.s.memberships {
		if m.UserID == userID && m.OrgID == orgID {
			m.Role = role
			break
		}
	}
	return nil
}

// ── SessionRepository ─────────────────────────────────────────────────────────

// SessionRepo implementa repository.SessionRepository en memoria.
type SessionRepo struct{ s *Store }

// NewSessionRepository construye el repositorio.
func NewSessionRepository(s *Store) *SessionRepo { return &SessionRepo{s: s} }

func (r *SessionRepo) Create(sess *entity.Session) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *sess
	r.s.sessions[sess.Token] = &cp
	return nil
}

func (r *SessionRepo) GetByToken(token string) (*entity.Session, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sess, ok := r.s.sessions[token]
	if !ok {
		return nil, nil
	}
	cp := *sess
	return &cp, nil
}

func (r *SessionRepo) Delete(token string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.sessions, token)
	return nil
}
