package store

import (
	"github.com/TKNasansor/TKNLIFT/internal/models"
)

// applySetUser selects the acting operator by display name. An unknown name
// creates the account on the fly; selecting the same name twice keeps the
// original id.
func applySetUser(st State, cmd SetUser, e stamp) (State, Result) {
	next := st
	for _, u := range st.Users {
		if u.Name == cmd.Name {
			user := u
			next.CurrentUser = &user
			return next, applied()
		}
	}

	user := models.User{ID: e.newID(), Name: cmd.Name}
	next.Users = append(append([]models.User{}, st.Users...), user)
	next.CurrentUser = &user
	return next, applied()
}

// applyDeleteUser removes an account. The current session is left alone even
// when it points at the removed account.
func applyDeleteUser(st State, cmd DeleteUser, _ stamp) (State, Result) {
	next := st
	users := make([]models.User, 0, len(st.Users))
	for _, u := range st.Users {
		if u.ID != cmd.ID {
			users = append(users, u)
		}
	}
	next.Users = users
	return next, applied()
}

// applyAddUpdate appends a caller-authored audit entry verbatim, bar the id.
func applyAddUpdate(st State, cmd AddUpdate, e stamp) (State, Result) {
	entry := models.Update{
		ID:        e.newID(),
		Action:    cmd.Action,
		User:      cmd.User,
		Timestamp: cmd.Timestamp,
		Details:   cmd.Details,
	}

	next := st
	next.Updates = prependUpdate(st.Updates, entry)
	return next, applied()
}

func applyAddNotification(st State, cmd AddNotification, _ stamp) (State, Result) {
	next := st
	next.Notifications = prependNotification(st.Notifications, cmd.Message)
	next.UnreadNotifications = st.UnreadNotifications + 1
	return next, applied()
}

// applyClearNotifications resets the unread counter; the messages themselves
// stay visible.
func applyClearNotifications(st State, _ ClearNotifications, _ stamp) (State, Result) {
	next := st
	next.UnreadNotifications = 0
	return next, applied()
}

func applyToggleSidebar(st State, _ ToggleSidebar, _ stamp) (State, Result) {
	next := st
	next.SidebarOpen = !st.SidebarOpen
	return next, applied()
}

// applyUpdateSettings merges a partial settings patch; absent fields are
// left untouched.
func applyUpdateSettings(st State, cmd UpdateSettings, _ stamp) (State, Result) {
	next := st
	next.Settings = cmd.Patch.Apply(st.Settings)
	return next, applied()
}
