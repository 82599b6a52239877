package lineup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettingsUniquesSet(t *testing.T) {
	assert.False(t, Settings{}.UniquesSet())
	assert.False(t, Settings{Uniques: 0}.UniquesSet())
	assert.True(t, Settings{Uniques: 1}.UniquesSet())
}

func TestSettingsMaxRepeats(t *testing.T) {
	// unset uniques is a no-op cap: every slot may repeat
	assert.Equal(t, 8, Settings{}.MaxRepeats(8))

	// uniques=1 over an 8-man roster allows at most 7 repeated slots
	assert.Equal(t, 7, Settings{Uniques: 1}.MaxRepeats(8))

	// uniques greater than roster size never goes negative
	assert.Equal(t, 0, Settings{Uniques: 10}.MaxRepeats(8))
}
