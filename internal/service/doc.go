// Package service contains the application-specific use cases.
// It orchestrates interactions between domain objects, the question store
// (defined in internal/store), the grader and the event emitter.
//
// Key components:
//
// 1. Service Interfaces:
//   - QuestionService: question authoring and answer grading
//
// 2. Dependency Management:
//   - Services receive dependencies through constructor injection
//   - Core dependencies include stores, domain services, and cross-cutting concerns
//
// 3. Error Handling:
//   - Failures are returned as QuestionServiceError values that wrap the
//     underlying domain or store error, so errors.Is keeps working
//
// The service layer depends on domain entities and store interfaces, never on
// a specific store implementation.
package service
