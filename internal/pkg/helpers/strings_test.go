package helpers

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCourseCode(t *testing.T) {
	assert.Equal(t, "CSC101", NormalizeCourseCode(" csc101 "))
	assert.Equal(t, "GST-103", NormalizeCourseCode("gst-103"))
	assert.Equal(t, "", NormalizeCourseCode("   "))
}

func TestNormalizeCourseName(t *testing.T) {
	assert.Equal(t, "Intro To Computing", NormalizeCourseName("inTRO to COMPUTING"))
	assert.Equal(t, "Use Of English", NormalizeCourseName("  use of english  "))
	assert.Equal(t, "", NormalizeCourseName(""))
}

func TestNormalizeCourseNameConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.Equal(t, "Use Of English", NormalizeCourseName("  use OF english "))
			}
		}()
	}
	wg.Wait()
}
