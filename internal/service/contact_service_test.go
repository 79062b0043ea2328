package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"portfolio/internal/mailer"
	"portfolio/internal/model"
)

// MockPortfolioService is a mock implementation of PortfolioService.
type MockPortfolioService struct {
	mock.Mock
}

func (m *MockPortfolioService) GetPortfolioData(ctx context.Context, lang string) (*PortfolioData, error) {
	args := m.Called(ctx, lang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PortfolioData), args.Error(1)
}

func (m *MockPortfolioService) GetAdminData(ctx context.Context) (*AdminData, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*AdminData), args.Error(1)
}

func contactPortfolioData() *PortfolioData {
	return &PortfolioData{
		Name:   "Mathias Legrand",
		Email:  "contact@example.com",
		Phone:  "+33 6 00 00 00 00",
		Social: model.Social{Github: "https://github.com/mlegrand"},
	}
}

func TestContactService_Send(t *testing.T) {
	input := ContactInput{
		Name:    "Jane Visitor",
		Email:   "jane@example.com",
		Subject: "Question",
		Message: "Bonjour !",
	}

	t.Run("sends owner notification then visitor confirmation", func(t *testing.T) {
		portfolio := new(MockPortfolioService)
		portfolio.On("GetPortfolioData", mock.Anything, "fr").Return(contactPortfolioData(), nil)

		mockMailer := new(MockMailer)
		mockMailer.On("Send", mock.MatchedBy(func(m mailer.Message) bool {
			return m.To == "contact@example.com" && m.ReplyTo != ""
		})).Return(nil).Once()
		mockMailer.On("Send", mock.MatchedBy(func(m mailer.Message) bool {
			return m.To == "jane@example.com" && m.FromName == "Mathias Legrand"
		})).Return(nil).Once()

		service := NewContactService(portfolio, mockMailer, "")
		err := service.Send(context.Background(), input)

		assert.NoError(t, err)
		mockMailer.AssertExpectations(t)
	})

	t.Run("configured contact address overrides the profile email", func(t *testing.T) {
		portfolio := new(MockPortfolioService)
		portfolio.On("GetPortfolioData", mock.Anything, "fr").Return(contactPortfolioData(), nil)

		mockMailer := new(MockMailer)
		mockMailer.On("Send", mock.MatchedBy(func(m mailer.Message) bool {
			return m.To == "owner@example.com"
		})).Return(nil).Once()
		mockMailer.On("Send", mock.MatchedBy(func(m mailer.Message) bool {
			return m.To == "jane@example.com"
		})).Return(nil).Once()

		service := NewContactService(portfolio, mockMailer, "owner@example.com")
		err := service.Send(context.Background(), input)

		assert.NoError(t, err)
		mockMailer.AssertExpectations(t)
	})

	t.Run("owner notification failure stops the flow", func(t *testing.T) {
		portfolio := new(MockPortfolioService)
		portfolio.On("GetPortfolioData", mock.Anything, "fr").Return(contactPortfolioData(), nil)

		mockMailer := new(MockMailer)
		mockMailer.On("Send", mock.Anything).Return(assert.AnError).Once()

		service := NewContactService(portfolio, mockMailer, "")
		err := service.Send(context.Background(), input)

		assert.Error(t, err)
		mockMailer.AssertNumberOfCalls(t, "Send", 1)
	})
}
