package stdlib

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ltlsimplify/internal/intset"
)

func TestPeriodicKnowsItsPhase(t *testing.T) {
	o := Periodic(3, 1)
	trueSet, falseSet, err := o.Check("billingCycleStart", nil)
	assert.NoError(t, err)
	assert.True(t, trueSet.Contains(1))
	assert.True(t, trueSet.Contains(4))
	assert.False(t, trueSet.Contains(0))
	assert.True(t, falseSet.Contains(0))
}

func TestPeriodicRejectsNonPositivePeriod(t *testing.T) {
	assert.Panics(t, func() { Periodic(0, 0) })
}

func TestThresholdLatchesAt(t *testing.T) {
	o := Threshold(5)
	trueSet, falseSet, err := o.Check("deployed", nil)
	assert.NoError(t, err)
	assert.True(t, trueSet.IsInf())
	assert.Equal(t, 5, trueSet.MinInfStart())
	assert.True(t, falseSet.Equals(intset.New(0, 1, 2, 3, 4)))
}

func TestAlwaysIsUniversal(t *testing.T) {
	trueSet, falseSet, err := Always().Check("anything", nil)
	assert.NoError(t, err)
	assert.True(t, trueSet.IsN0())
	assert.True(t, falseSet.IsEmpty())
}

func TestNeverIsUniversallyFalse(t *testing.T) {
	trueSet, falseSet, err := Never().Check("anything", nil)
	assert.NoError(t, err)
	assert.True(t, trueSet.IsEmpty())
	assert.True(t, falseSet.IsN0())
}
