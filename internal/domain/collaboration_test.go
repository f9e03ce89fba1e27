package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestStatus_CanBecome(t *testing.T) {
	statuses := []RequestStatus{RequestPending, RequestAccepted, RequestRejected}

	for _, from := range statuses {
		for _, to := range statuses {
			want := from == RequestPending && (to == RequestAccepted || to == RequestRejected)
			assert.Equal(t, want, from.CanBecome(to), "%s -> %s", from, to)
		}
	}

	assert.False(t, RequestStatus("bogus").CanBecome(RequestAccepted))
	assert.False(t, RequestPending.CanBecome(RequestStatus("bogus")))
}

func TestRequestAction_TargetStatus(t *testing.T) {
	status, ok := ActionAccept.TargetStatus()
	assert.True(t, ok)
	assert.Equal(t, RequestAccepted, status)

	status, ok = ActionReject.TargetStatus()
	assert.True(t, ok)
	assert.Equal(t, RequestRejected, status)

	_, ok = RequestAction("ignore").TargetStatus()
	assert.False(t, ok)
}

func TestProject_Membership(t *testing.T) {
	p := Project{
		ID:      "p1",
		OwnerID: "owner",
		TeamMembers: []TeamMember{
			{UserID: "owner", Role: RoleOwner},
			{UserID: "member", Role: RoleMember},
		},
		CollaborationRequests: []CollaborationRequest{
			{ID: "r1", UserID: "member", Status: RequestAccepted},
		},
	}

	assert.True(t, p.IsOwner("owner"))
	assert.False(t, p.IsOwner("member"))
	assert.True(t, p.IsMember("member"))
	assert.False(t, p.IsMember("stranger"))

	assert.NotNil(t, p.RequestByID("r1"))
	assert.Nil(t, p.RequestByID("r2"))
	assert.NotNil(t, p.RequestByUser("member"))
	assert.Nil(t, p.RequestByUser("stranger"))

	assert.True(t, p.RemoveMember("member"))
	assert.False(t, p.IsMember("member"))
	assert.False(t, p.RemoveMember("member"))
	// request history survives the membership change
	assert.NotNil(t, p.RequestByUser("member"))
}
