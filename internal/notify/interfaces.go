package notify

//go:generate mockgen -source=notify.go -destination=mock_sender_test.go -package=notify
