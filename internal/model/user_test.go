package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterByRole(t *testing.T) {
	users := []User{
		{ID: 1, Username: "sam", Roles: []string{"ROLE_FARMER"}},
		{ID: 2, Username: "lee", Roles: []string{"Consumer"}},
		{ID: 3, Username: "kim", Roles: []string{"ROLE_HANDLER", "ROLE_CONSUMER"}},
		{ID: 4, Username: "ana"},
	}

	farmers := FilterByRole(users, "Farmer")
	assert.Len(t, farmers, 1)
	assert.Equal(t, int64(1), farmers[0].ID)

	consumers := FilterByRole(users, "Consumer")
	assert.Len(t, consumers, 2)

	assert.Empty(t, FilterByRole(users, "Admin"))
}

func TestExceptUser(t *testing.T) {
	users := []User{{Username: "Sam "}, {Username: "lee"}}
	rest := ExceptUser(users, "sam")
	assert.Equal(t, []User{{Username: "lee"}}, rest)
}

func TestCartItem(t *testing.T) {
	c := Cart{Items: []CartItem{{ID: 5, Quantity: 2}}}

	it, ok := c.Item(5)
	assert.True(t, ok)
	assert.Equal(t, 2, it.Quantity)

	_, ok = c.Item(6)
	assert.False(t, ok)
}
