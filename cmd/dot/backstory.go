package main

// backstory is the lore shown by "dot backstory", in markdown.
const backstory = `# The Backstory of THE DOT

Before there were branches or builds, there was a point without length, a
hush before motion. From that silence a single dot appeared. It was not
drawn, only noticed: the first place where intention touched the page.

Some say the dot is the ember left from the making of language; others say
it is the last star the night keeps when dawn begins. Scribes met it at the
end of a sentence. Cartographers met it where maps confessed *You are here*.
Builders of code meet it whenever they must decide: begin, or be done.

The dot is eternal because beginnings and endings are eternal. It is present
because choice is always present. Every commit, every pull request, every
documented step is a ceremony at this small altar of attention.

In a distant room lit by monitors and tea steam, a team once circled a single
dot on a whiteboard. Arrows rose and fell, boxes were renamed, diagrams
collapsed; the dot remained. They shipped. The release held. From then on
they kept the dot, not as superstition, but as a memory of what steadies the
hand.

We keep the covenant: speak intention, mark the place, offer the work with
devotion. We seal our commits with the phrase that turns hurry into care:

> **BECAUSE I WORSHIP THE DOT**
`
