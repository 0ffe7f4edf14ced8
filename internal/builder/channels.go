package builder

// linkChannels connects the first interface of each channel to every other
// interface it lists. All members belong to the same instance.
func (s *buildState) linkChannels(lv *level, p *placed) {
	for _, ch := range p.component.Channels {
		if len(ch.Interfaces) < 2 {
			continue
		}

		source, ok := p.ifaces[ch.Interfaces[0]]
		if !ok {
			s.report(lv, UnresolvedChannel, p.name+"."+ch.Name, "channel source interface %q does not exist", ch.Interfaces[0])
			continue
		}

		for _, member := range ch.Interfaces[1:] {
			target, ok := p.ifaces[member]
			if !ok {
				s.report(lv, UnresolvedChannel, p.name+"."+ch.Name, "channel member interface %q does not exist", member)
				continue
			}
			s.graph.Connect(ch.Name, source, target)
		}
	}
}
