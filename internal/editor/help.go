package editor

// helpText is the content of the :help overlay.
func helpText() string {
	return `verso help

Normal mode
  h j k l        move left, down, up, right (takes a count, e.g. 12j)
  w b            next / previous word start
  { }            previous / next paragraph
  0 $ ^          line start, line end, first non-whitespace
  g G            first / last line
  H M L          top, middle, bottom of the screen
  %              jump to a percentage of the file (e.g. 50%)
  m              jump to the matching bracket or quote
  n N            next / previous search match
  i              enter insert mode
  A              append at the end of the line
  o O            open a line below / above
  x              delete the character under the cursor
  d              delete the current line
  J              join the next line onto this one
  <escape>       clear the message bar and search matches

Insert mode
  <escape>       back to normal mode
  <backspace>    delete backwards, joining lines at column 0
  <tab>          insert four spaces

Commands (:)
  :w [name]      save, optionally under a new name
  :q  :q!        quit, force quit
  :wq            save and quit
  :o <name>      open a file (also :open)
  :new <name>    start an empty file
  :<number>      jump to that line
  :ln            toggle line numbers
  :stats         toggle line and word counts in the status bar
  :help          this screen
  :debug         dump editor state to the log file

Search (/)
  /text          find a literal string, then n and N to cycle matches

Press q to return to the editor.`
}
