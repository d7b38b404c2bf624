package game

// Publisher delivers state events to whoever is listening on subject.
type Publisher interface {
	Publish(subject string, data []byte) error
}
