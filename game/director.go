package game

// Director plays a game on someone's behalf.
//
// End is called by the game, with the game locked, the moment it becomes
// terminal. It must not block, and must tolerate being called more than once.
type Director interface {
	/**
	 * Initialize the director
	 */
	Init(*Game)

	/**
	 * Perform a single step of actions
	 */
	Act()

	/**
	 * Continue acting periodically, until End() is called
	 */
	ActContinuously()

	/**
	 * Stop acting
	 */
	End()
}
