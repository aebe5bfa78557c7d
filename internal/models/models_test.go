package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValuesUnsetAreNil(t *testing.T) {
	p := Product{ID: 1, Name: "Lamp", Cost: 2, Price: 3, DateCreated: time.Unix(0, 0).UTC()}

	values := p.Values()
	assert.Len(t, values, 9)
	assert.Nil(t, values[2], "ScanCode")
	assert.Nil(t, values[7], "DateUpdated")
}

func TestValuesSetAreDereferenced(t *testing.T) {
	o := Order{ID: 2, CustomerID: 1, AddressID: 1, Status: StatusComplete, Shipped: Ptr(true)}

	values := o.Values()
	assert.Equal(t, true, values[6])
	assert.Equal(t, StatusComplete, values[3])
}
