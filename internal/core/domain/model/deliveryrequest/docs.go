// Package deliveryrequest contains the DeliveryRequest aggregate and its
// Status state machine.
//
// A DeliveryRequest is created exactly once, transitions at most once from
// pending to dispatched, and is never deleted by this service. The aggregate
// enforces structural validity and the transition rules; uniqueness of the
// deliveryId business key is enforced at the persistence boundary.
package deliveryrequest
