package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/addisfleet/transport-admin/internal/models"
)

func TestParseEmployeeIDs(t *testing.T) {
	ids, err := parseEmployeeIDs("3,5")
	assert.NoError(t, err)
	assert.Equal(t, []int{3, 5}, ids)

	ids, err = parseEmployeeIDs(" 3 , 5 ,8")
	assert.NoError(t, err)
	assert.Equal(t, []int{3, 5, 8}, ids)

	ids, err = parseEmployeeIDs("")
	assert.NoError(t, err)
	assert.Nil(t, ids)

	_, err = parseEmployeeIDs("3,x")
	assert.Error(t, err)
}

func TestJoinRoles(t *testing.T) {
	s := joinRoles(models.Roles())
	assert.Contains(t, s, "Employee")
	assert.Contains(t, s, "System Admin")
}
