// Package acl is the anti-corruption layer between the gateway's domain
// and the SOAP order-management backend.
//
// The ACL is a translation boundary, ensuring that:
//
//   - Backend XML contracts never leak into the domain
//   - Backend faults map to typed domain errors
//   - Backend data is normalized (absent elements, status names) before
//     domain objects are built
//
// # Package Components
//
//   - contracts.go: the backend's XML request/response contracts
//   - mapper.go: pure translation functions between contracts and domain types
//   - [Classifier]: the fault classification policy (business vs technical)
//   - [OrderClient]: the ports.OrderClient adapter dispatching operations
//     through a soap.Invoker
//
// Translation functions are pure and total: they never perform I/O and
// they tolerate partial backend payloads by substituting zero values.
package acl
