package e2e

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type testConversationSuite struct {
	BaseConsoleSuite
}

func TestConversationSuite(t *testing.T) {
	suite.Run(t, &testConversationSuite{})
}

func (s *testConversationSuite) TestFullConversation() {
	if s.Config.KnowledgeFile != "" {
		s.T().Skip("scenario expects the embedded knowledge base")
	}

	replies := s.Converse(s.T(), "Greeting, questions, thanks and goodbye",
		"Hello!",
		"What is your name?",
		"how are you",
		"tell me a joke",
		"xyzzy plugh",
		"thank you so much",
		"see you later",
		"never answered",
	)

	s.Require().Len(replies, 7)
	s.Equal("Hello! How can I help you today?", replies[0])
	s.True(strings.HasPrefix(replies[1], "I'm an NLP Chatbot built with Go."), replies[1])
	s.True(strings.HasSuffix(replies[1], "(confidence=1.00)"), replies[1])
	s.True(strings.HasPrefix(replies[2], "I'm a program, so I don't have feelings"), replies[2])
	s.Contains(replies[3], "(confidence=")
	s.Equal("I'm not sure about that. You can extend the knowledge base file.", replies[4])
	s.Equal("You're welcome!", replies[5])
	s.Equal("Goodbye!", replies[6])
}

func (s *testConversationSuite) TestExitStopsImmediately() {
	replies := s.Converse(s.T(), "Exit keyword", "quit", "what is your name")
	s.Equal([]string{"Goodbye — have a nice day!"}, replies)
}

func (s *testConversationSuite) TestEndOfInput() {
	replies := s.Converse(s.T(), "End of input", "   ")
	s.Equal([]string{"Goodbye!"}, replies)
}
