// Package enginetest provides in-memory fakes of the engine and plugin
// collaborator interfaces: a simulated processing engine that records
// topology mutations and rebuild calls, a stateful fake processor, and a
// fake plugin catalog/host pair with injectable instantiation failures.
//
// The fakes back the module's own test suites and the runnable demos;
// nothing here touches real audio hardware or plugin binaries.
package enginetest
