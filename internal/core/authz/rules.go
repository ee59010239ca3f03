// Package authz holds the pure authorization decision functions. None of
// them touch the store: callers fetch the ownership facts first and must
// short-circuit lookups in the documented order so that error precedence
// stays stable.
package authz

import "github.com/taskhub/todo-system/internal/core/domain"

// Decision is the outcome of a single authorization rule. When denied,
// Reason carries the specific domain error to surface to the caller.
type Decision struct {
	Allowed bool
	Reason  error
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason error) Decision {
	return Decision{Reason: reason}
}

// CanModifyTodo reports whether the principal owns the todo. A todo without
// a valid owner is a data-integrity problem surfaced as a denial.
func CanModifyTodo(p domain.Principal, todoOwnerID string) Decision {
	if todoOwnerID == "" {
		return deny(domain.ErrOwnerMissing)
	}
	if p.UserID != todoOwnerID {
		return deny(domain.ErrNotOwner)
	}
	return allow()
}

// CanAssignManager layers the self-assignment guard on top of ownership.
// Callers check CanModifyTodo before resolving the candidate user, then run
// the full rule once the candidate is known to exist.
func CanAssignManager(p domain.Principal, todoOwnerID, candidateID string) Decision {
	if d := CanModifyTodo(p, todoOwnerID); !d.Allowed {
		return d
	}
	if candidateID == todoOwnerID {
		return deny(domain.ErrSelfAssignment)
	}
	return allow()
}

// CanDeleteManager requires ownership of the todo and that the manager
// record actually belongs to the requested todo.
func CanDeleteManager(p domain.Principal, todoOwnerID, requestedTodoID, managerTodoID string) Decision {
	if d := CanModifyTodo(p, todoOwnerID); !d.Allowed {
		return d
	}
	if managerTodoID != requestedTodoID {
		return deny(domain.ErrManagerNotOnTodo)
	}
	return allow()
}

// CanCommentOnTodo gates comment creation: only registered managers of the
// todo may comment. The owner qualifies through the manager record created
// alongside the todo.
func CanCommentOnTodo(_ domain.Principal, isManager bool) Decision {
	if !isManager {
		return deny(domain.ErrNotManager)
	}
	return allow()
}

// CanChangeRole is admin-only.
func CanChangeRole(p domain.Principal) Decision {
	return adminOnly(p)
}

// CanDeleteComment is admin-only.
func CanDeleteComment(p domain.Principal) Decision {
	return adminOnly(p)
}

func adminOnly(p domain.Principal) Decision {
	if !p.IsAdmin() {
		return deny(domain.ErrInsufficientRole)
	}
	return allow()
}
