package app

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	gomock "go.uber.org/mock/gomock"

	"ppob-api/internal/config"
	"ppob-api/internal/handlers"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestGracefulShutdown() {
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	s.app.cfg = &config.Config{Address: "localhost:0"}
	s.app.api = &handlers.Handlers{
		AuthHandler:        handlers.NewMockAuthHandler(ctrl),
		ProfileHandler:     handlers.NewMockProfileHandler(ctrl),
		InformationHandler: handlers.NewMockInformationHandler(ctrl),
		TransactionHandler: handlers.NewMockTransactionHandler(ctrl),
		HealthHandler:      handlers.NewMockHealthHandler(ctrl),
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.Require().NoError(s.app.startHTTPServer(ctx))
	cancel()

	err := s.app.Wait(ctx, cancel)

	s.NoError(err)
}
