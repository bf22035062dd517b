package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type CircuitBreakerTestSuite struct {
	suite.Suite
	breaker CircuitBreakerInterface
}

func (s *CircuitBreakerTestSuite) SetupTest() {
	s.breaker = NewCircuitBreaker(CircuitBreakerConfig{
		MaxFailures:     3,
		ResetTimeout:    50 * time.Millisecond,
		HalfOpenMaxSucc: 2,
	})
}

func TestCircuitBreakerSuite(t *testing.T) {
	suite.Run(t, new(CircuitBreakerTestSuite))
}

func (s *CircuitBreakerTestSuite) TestStartsClosed() {
	s.Equal(StateClosed, s.breaker.GetState())
	s.False(s.breaker.IsOpen())
	s.Equal(0, s.breaker.GetFailureCount())
}

func (s *CircuitBreakerTestSuite) TestOpensAfterMaxFailures() {
	s.breaker.RecordFailure()
	s.breaker.RecordFailure()
	s.False(s.breaker.IsOpen())

	s.breaker.RecordFailure()
	s.Equal(StateOpen, s.breaker.GetState())
	s.True(s.breaker.IsOpen())
}

func (s *CircuitBreakerTestSuite) TestSuccessResetsFailureCount() {
	s.breaker.RecordFailure()
	s.breaker.RecordFailure()
	s.breaker.RecordSuccess()

	s.Equal(0, s.breaker.GetFailureCount())
	s.False(s.breaker.IsOpen())
}

func (s *CircuitBreakerTestSuite) TestHalfOpenAfterResetTimeout() {
	for i := 0; i < 3; i++ {
		s.breaker.RecordFailure()
	}
	s.True(s.breaker.IsOpen())

	time.Sleep(60 * time.Millisecond)

	s.False(s.breaker.IsOpen())
	s.Equal(StateHalfOpen, s.breaker.GetState())
}

func (s *CircuitBreakerTestSuite) TestHalfOpenClosesAfterSuccesses() {
	for i := 0; i < 3; i++ {
		s.breaker.RecordFailure()
	}
	time.Sleep(60 * time.Millisecond)
	s.False(s.breaker.IsOpen())

	s.breaker.RecordSuccess()
	s.Equal(StateHalfOpen, s.breaker.GetState())

	s.breaker.RecordSuccess()
	s.Equal(StateClosed, s.breaker.GetState())
}

func (s *CircuitBreakerTestSuite) TestHalfOpenReopensOnFailure() {
	for i := 0; i < 3; i++ {
		s.breaker.RecordFailure()
	}
	time.Sleep(60 * time.Millisecond)
	s.False(s.breaker.IsOpen())

	s.breaker.RecordFailure()
	s.True(s.breaker.IsOpen())
}

func (s *CircuitBreakerTestSuite) TestReset() {
	for i := 0; i < 3; i++ {
		s.breaker.RecordFailure()
	}
	s.True(s.breaker.IsOpen())

	s.breaker.Reset()

	s.Equal(StateClosed, s.breaker.GetState())
	s.Equal(0, s.breaker.GetFailureCount())
}

func (s *CircuitBreakerTestSuite) TestStateString() {
	s.Equal("closed", StateClosed.String())
	s.Equal("open", StateOpen.String())
	s.Equal("half_open", StateHalfOpen.String())
}
