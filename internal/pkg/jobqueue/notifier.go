package jobqueue

// MailNotifier dispatches order notifications by enqueuing email jobs. The
// caller returns to its client without waiting for SMTP; delivery latency and
// failures stay inside the queue's retry machinery.
type MailNotifier struct{}

// NewMailNotifier creates a queue-backed notifier.
func NewMailNotifier() *MailNotifier {
	return &MailNotifier{}
}

// NotifyOrderPaid enqueues the order confirmation email for the given order.
func (n *MailNotifier) NotifyOrderPaid(orderID uint) error {
	payload := OrderEmailJobPayload{OrderID: orderID}
	_, err := GetManager().GetQueue().EnqueueJob(JobTypeOrderEmail, payload.ToMap())
	return err
}
