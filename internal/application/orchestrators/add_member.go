package orchestrators

import (
	"context"
	"log/slog"

	"gymdesk/internal/domain/member"
)

// MemberStore defines the member store interface needed by AddMember.
type MemberStore interface {
	Insert(ctx context.Context, m member.Member) error
}

// AddMemberInput carries input for the add-member orchestrator. Phone and
// Email may be empty; they are stored as empty text.
type AddMemberInput struct {
	Name   string
	Gender string
	Phone  string
	Email  string
}

// AddMemberDeps holds dependencies for AddMember.
type AddMemberDeps struct {
	MemberStore MemberStore
}

// ExecuteAddMember inserts one new member row.
// PRE: input fields are already trimmed by the form layer
// POST: Exactly one member row exists for this call
func ExecuteAddMember(ctx context.Context, input AddMemberInput, deps AddMemberDeps) error {
	m := member.Member{
		Name:   input.Name,
		Gender: input.Gender,
		Phone:  input.Phone,
		Email:  input.Email,
	}
	if err := m.Validate(); err != nil {
		return err
	}

	if err := deps.MemberStore.Insert(ctx, m); err != nil {
		return err
	}

	slog.Info("member_added", "name", m.Name)
	return nil
}
