/*
Package builder walks a design hierarchy and produces the connectivity graph
of everything it instantiates.

A build is a depth-first traversal, one design level at a time. Each level
goes through three passes:

 1. Instance creation: every component instance of the design is fetched
    from the repository and placed in the graph together with its memory
    tree (address spaces, memory maps, blocks, registers, fields, remaps),
    its bus interfaces and the edges implied by its channels.

 2. Interconnection wiring: each interconnection's start interface is
    resolved at the current level and joined to its active interfaces
    (same level) and hierarchical interfaces (the enclosing instance).

 3. Descent: every instance whose active view is hierarchical has its
    nested design (and design configuration) resolved through the
    repository, and the traversal recurses with that instance as the
    enclosing one.

Nothing in a build is fatal. Missing documents, unresolved references,
ambiguous views, cyclic hierarchies and the depth cap are recorded as
Diagnostics and logged; the affected element is skipped and the rest of the
build proceeds.
*/
package builder
